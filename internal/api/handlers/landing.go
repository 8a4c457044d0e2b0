package handlers

import (
	"net/http"
	"time"

	"github.com/aspireai/aspire-site/internal/contact"
	"github.com/aspireai/aspire-site/internal/logging"
	"github.com/aspireai/aspire-site/internal/metrics"
	"github.com/aspireai/aspire-site/internal/utils"
	"github.com/aspireai/aspire-site/internal/web/components"

	"github.com/gin-gonic/gin"
)

// LandingHandler serves the landing page and its contact form.
type LandingHandler struct {
	client  contact.Client
	siteURL string
	widget  components.ChatWidgetConfig
	metrics *metrics.Metrics
	logger  *logging.Logger
	now     func() time.Time
}

func NewLandingHandler(client contact.Client, siteURL string, widget components.ChatWidgetConfig, m *metrics.Metrics, logger *logging.Logger) *LandingHandler {
	if logger == nil {
		logger = logging.Discard()
	}
	if m == nil {
		m = metrics.New()
	}
	return &LandingHandler{
		client:  client,
		siteURL: siteURL,
		widget:  widget,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// Show renders the page with an empty contact form.
func (h *LandingHandler) Show(c *gin.Context) {
	h.render(c, http.StatusOK, components.ContactFormView{})
}

func (h *LandingHandler) render(c *gin.Context, status int, form components.ContactFormView) {
	page := components.LandingPage(components.LandingData{
		Year:       h.now().Year(),
		SiteURL:    h.siteURL,
		Form:       form,
		ChatWidget: h.widget,
	})
	utils.RenderHTML(c, status, page)
}
