package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aspireai/aspire-site/internal/contact"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	contactPath         = "/api/contact"
	statusSuccess       = "success"
	maxResponseBodySize = 64 << 10
)

// ContactAPIService posts contact submissions to the Contact API.
type ContactAPIService struct {
	endpoint string
	client   *http.Client
}

// contactAPIResponse is the payload returned by the Contact API.
// Status is a pointer so a missing field can be told apart from an empty one.
type contactAPIResponse struct {
	Status *string `json:"status"`
}

// NewContactAPIService creates a client for the Contact API rooted at baseURL.
func NewContactAPIService(baseURL string, timeout time.Duration) (*ContactAPIService, error) {
	endpoint, err := ContactEndpoint(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &ContactAPIService{
		endpoint: endpoint,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

// ContactEndpoint joins the backend base URL with the contact path.
func ContactEndpoint(baseURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return "", fmt.Errorf("invalid backend URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid backend URL %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid backend URL %q: missing host", baseURL)
	}
	u.Path = strings.TrimRight(u.Path, "/") + contactPath
	u.RawQuery = ""
	u.Fragment = ""
	return u.String(), nil
}

// Endpoint returns the URL submissions are posted to.
func (s *ContactAPIService) Endpoint() string {
	return s.endpoint
}

// SubmitContact sends one submission. The returned error wraps
// contact.ErrTransport, contact.ErrServerRejected or contact.ErrMalformedResponse.
func (s *ContactAPIService) SubmitContact(ctx context.Context, submission contact.Submission) error {
	jsonData, err := json.Marshal(submission)
	if err != nil {
		return fmt.Errorf("failed to marshal contact submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create contact request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", contact.ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %v", contact.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: contact API returned status %d", contact.ErrTransport, resp.StatusCode)
	}

	var result contactAPIResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("%w: %v", contact.ErrMalformedResponse, err)
	}
	if result.Status == nil {
		return fmt.Errorf("%w: response has no status field", contact.ErrMalformedResponse)
	}
	if *result.Status != statusSuccess {
		return fmt.Errorf("%w: status %q", contact.ErrServerRejected, *result.Status)
	}

	return nil
}
