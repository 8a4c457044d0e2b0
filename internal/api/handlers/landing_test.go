package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/aspireai/aspire-site/internal/api/middleware"
	"github.com/aspireai/aspire-site/internal/contact"
	"github.com/aspireai/aspire-site/internal/logging"
	"github.com/aspireai/aspire-site/internal/metrics"
	"github.com/aspireai/aspire-site/internal/web/components"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logging.Configure(&logging.Config{Level: "error"})
	os.Exit(m.Run())
}

type fakeClient struct {
	err   error
	calls []contact.Submission
}

func (f *fakeClient) SubmitContact(_ context.Context, s contact.Submission) error {
	f.calls = append(f.calls, s)
	return f.err
}

func newTestRouter(client contact.Client, m *metrics.Metrics) *gin.Engine {
	h := NewLandingHandler(client, "https://aspire.example", components.ChatWidgetConfig{Enabled: true, WidgetID: "widget-1"}, m, nil)
	r := gin.New()
	r.GET("/", h.Show)
	r.POST("/contact", middleware.BindContactRequest(), h.SubmitContact)
	return r
}

func postForm(r *gin.Engine, values url.Values, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var janeDoe = url.Values{
	"name":    {"Jane Doe"},
	"email":   {"jane@example.com"},
	"phone":   {"0400 000 000"},
	"message": {"Need a quote"},
}

func TestShowRendersEmptyForm(t *testing.T) {
	r := newTestRouter(&fakeClient{}, metrics.New())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, `id="contact-form"`)
	assert.Contains(t, body, "Send Message")
	assert.Equal(t, 1, strings.Count(body, "widgets.leadconnectorhq.com/loader.js"))
	assert.NotContains(t, body, `id="contact-notification"`)
	assert.Contains(t, body, `<meta property="og:url" content="https://aspire.example/">`)
}

func TestSubmitContactSuccess(t *testing.T) {
	client := &fakeClient{}
	m := metrics.New()
	r := newTestRouter(client, m)

	w := postForm(r, janeDoe, "")

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, client.calls, 1)
	assert.Equal(t, contact.Submission{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "0400 000 000",
		Message: "Need a quote",
	}, client.calls[0])

	body := w.Body.String()
	assert.Contains(t, body, "Message Sent!")
	assert.NotContains(t, body, `value="Jane Doe"`, "fields reset after a successful send")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContactSubmissions.WithLabelValues(metrics.OutcomeSent)))
}

func TestSubmitContactInvalid(t *testing.T) {
	client := &fakeClient{}
	m := metrics.New()
	r := newTestRouter(client, m)

	values := url.Values{"name": {"Jane Doe"}, "email": {""}, "message": {"Need a quote"}}
	w := postForm(r, values, "")

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Empty(t, client.calls)
	body := w.Body.String()
	assert.Contains(t, body, `value="Jane Doe"`)
	assert.NotContains(t, body, `id="contact-notification"`)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContactSubmissions.WithLabelValues(metrics.OutcomeInvalid)))
}

func TestSubmitContactFailurePreservesFields(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		outcome string
		want    string
	}{
		{"rejected", contact.ErrServerRejected, metrics.OutcomeRejected, "Unexpected response from server."},
		{"malformed", contact.ErrMalformedResponse, metrics.OutcomeRejected, "Unexpected response from server."},
		{"transport", contact.ErrTransport, metrics.OutcomeFailed, "Failed to send message. Please try again or email us directly."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{err: tt.err}
			m := metrics.New()
			r := newTestRouter(client, m)

			w := postForm(r, janeDoe, "")

			assert.Equal(t, http.StatusBadGateway, w.Code)
			assert.Len(t, client.calls, 1)
			body := w.Body.String()
			assert.Contains(t, body, tt.want)
			assert.Contains(t, body, `value="Jane Doe"`)
			assert.Contains(t, body, "Send Message", "submit control re-enabled")
			assert.Equal(t, 1.0, testutil.ToFloat64(m.ContactSubmissions.WithLabelValues(tt.outcome)))
		})
	}
}

func TestSubmitContactJSON(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r := newTestRouter(&fakeClient{}, metrics.New())
		w := postForm(r, janeDoe, "application/json")

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				Sent         bool                 `json:"sent"`
				Notification contact.Notification `json:"notification"`
				Fields       contact.Submission   `json:"fields"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.True(t, resp.Data.Sent)
		assert.Equal(t, contact.NotificationSuccess, resp.Data.Notification.Kind)
		assert.True(t, resp.Data.Fields.IsEmpty())
	})

	t.Run("validation", func(t *testing.T) {
		r := newTestRouter(&fakeClient{}, metrics.New())
		w := postForm(r, url.Values{"name": {"Jane Doe"}}, "application/json")

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"VALIDATION_ERROR"`)
		assert.Contains(t, w.Body.String(), `"field":"email"`)
		assert.Contains(t, w.Body.String(), `"field":"message"`)
	})

	t.Run("failure", func(t *testing.T) {
		r := newTestRouter(&fakeClient{err: errors.New("connection refused")}, metrics.New())
		w := postForm(r, janeDoe, "application/json")

		require.Equal(t, http.StatusBadGateway, w.Code)
		var resp struct {
			Success bool `json:"success"`
			Data    struct {
				Fields contact.Submission `json:"fields"`
			} `json:"data"`
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "BAD_GATEWAY", resp.Error.Code)
		assert.Equal(t, "Failed to send message. Please try again or email us directly.", resp.Error.Message)
		assert.Equal(t, "Jane Doe", resp.Data.Fields.Name)
	})
}

func TestSubmitContactWithoutBinding(t *testing.T) {
	h := NewLandingHandler(&fakeClient{}, "", components.ChatWidgetConfig{}, nil, nil)
	r := gin.New()
	r.POST("/contact", h.SubmitContact)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/contact", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthCheck(t *testing.T) {
	r := gin.New()
	r.GET("/health", NewHealthHandler().Check)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
