package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aspireai/aspire-site/internal/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method      string
	path        string
	contentType string
	body        map[string]interface{}
}

func fakeContactAPI(t *testing.T, status int, response string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var captured []capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &body))
		captured = append(captured, capturedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			body:        body,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func TestContactEndpoint(t *testing.T) {
	tests := []struct {
		base    string
		want    string
		wantErr bool
	}{
		{"https://api.aspireexecutive.com.au", "https://api.aspireexecutive.com.au/api/contact", false},
		{"https://api.aspireexecutive.com.au/", "https://api.aspireexecutive.com.au/api/contact", false},
		{"http://localhost:8001/backend", "http://localhost:8001/backend/api/contact", false},
		{"  http://localhost:8001  ", "http://localhost:8001/api/contact", false},
		{"localhost:8001", "", true},
		{"ftp://example.com", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			got, err := ContactEndpoint(tt.base)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubmitContactOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		wantErr  error
	}{
		{"success", http.StatusOK, `{"status":"success"}`, nil},
		{"created counts as 2xx", http.StatusCreated, `{"status":"success","id":"abc"}`, nil},
		{"non-success status", http.StatusOK, `{"status":"error"}`, contact.ErrServerRejected},
		{"missing status", http.StatusOK, `{"ok":true}`, contact.ErrMalformedResponse},
		{"null body", http.StatusOK, `null`, contact.ErrMalformedResponse},
		{"not json", http.StatusOK, `<html>oops</html>`, contact.ErrMalformedResponse},
		{"server error", http.StatusInternalServerError, `{"status":"success"}`, contact.ErrTransport},
		{"bad request", http.StatusBadRequest, `{"detail":"invalid"}`, contact.ErrTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, captured := fakeContactAPI(t, tt.status, tt.response)
			svc, err := NewContactAPIService(srv.URL, time.Second)
			require.NoError(t, err)

			err = svc.SubmitContact(context.Background(), contact.Submission{
				Name: "Jane Doe", Email: "jane@example.com", Message: "Need a quote",
			})

			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Len(t, *captured, 1)
		})
	}
}

func TestSubmitContactNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	base := srv.URL
	srv.Close()

	svc, err := NewContactAPIService(base, time.Second)
	require.NoError(t, err)

	err = svc.SubmitContact(context.Background(), contact.Submission{Name: "a", Email: "a@b.co", Message: "m"})
	assert.ErrorIs(t, err, contact.ErrTransport)
}

func TestSubmitContactTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	svc, err := NewContactAPIService(srv.URL, 50*time.Millisecond)
	require.NoError(t, err)

	err = svc.SubmitContact(context.Background(), contact.Submission{Name: "a", Email: "a@b.co", Message: "m"})
	assert.ErrorIs(t, err, contact.ErrTransport)
}

// End-to-end: the form, the HTTP client and a fake Contact API together.
func TestContactFormEndToEnd(t *testing.T) {
	srv, captured := fakeContactAPI(t, http.StatusOK, `{"status":"success"}`)
	svc, err := NewContactAPIService(srv.URL, time.Second)
	require.NoError(t, err)

	var notes []contact.Notification
	form := contact.NewForm(svc, contact.NotifierFunc(func(n contact.Notification) {
		notes = append(notes, n)
	}), nil)

	require.NoError(t, form.UpdateField(contact.FieldName, "Jane Doe"))
	require.NoError(t, form.UpdateField(contact.FieldEmail, "jane@example.com"))
	require.NoError(t, form.UpdateField(contact.FieldPhone, ""))
	require.NoError(t, form.UpdateField(contact.FieldMessage, "Need a quote"))

	require.NoError(t, form.Submit(context.Background()))

	require.Len(t, *captured, 1)
	req := (*captured)[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/api/contact", req.path)
	assert.Equal(t, "application/json", req.contentType)
	assert.Equal(t, map[string]interface{}{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"phone":   "",
		"message": "Need a quote",
	}, req.body)

	require.Len(t, notes, 1)
	assert.Equal(t, contact.NotificationSuccess, notes[0].Kind)
	assert.Equal(t, contact.Submission{}, form.Fields())
	assert.False(t, form.Submitting())
}
