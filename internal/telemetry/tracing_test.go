package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aspireai/aspire-site/internal/logging"

	"github.com/gin-gonic/gin"
)

func TestSetupDisabled(t *testing.T) {
	tr, err := Setup(context.Background(), Config{ServiceName: "aspire-site"}, logging.Discard())
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(tr.Middleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	if err := tr.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestStripScheme(t *testing.T) {
	tests := map[string]string{
		"http://otel-collector:4317": "otel-collector:4317",
		"https://otel.example.com/":  "otel.example.com",
		"otel-collector:4317":        "otel-collector:4317",
	}
	for in, want := range tests {
		if got := stripScheme(in); got != want {
			t.Errorf("stripScheme(%q) = %q, want %q", in, got, want)
		}
	}
}
