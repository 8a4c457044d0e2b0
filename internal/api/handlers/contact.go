package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/aspireai/aspire-site/internal/api/constants"
	"github.com/aspireai/aspire-site/internal/api/dto/common"
	contactdto "github.com/aspireai/aspire-site/internal/api/dto/v1/contact"
	"github.com/aspireai/aspire-site/internal/api/validation"
	"github.com/aspireai/aspire-site/internal/contact"
	"github.com/aspireai/aspire-site/internal/metrics"
	"github.com/aspireai/aspire-site/internal/utils"
	"github.com/aspireai/aspire-site/internal/web/components"

	"github.com/gin-gonic/gin"
)

// SubmitContact runs one contact form submission for the posted values and
// answers with the re-rendered page, or JSON when the client asks for it.
func (h *LandingHandler) SubmitContact(c *gin.Context) {
	// Get contact data from context (set by BindContactRequest)
	contactData, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Contact data not found in context")
		return
	}
	req, ok := contactData.(*contactdto.ContactRequest)
	if !ok {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, "Invalid contact data format")
		return
	}

	var note *contact.Notification
	form := contact.NewForm(h.client, contact.NotifierFunc(func(n contact.Notification) {
		note = &n
	}), h.logger)
	form.Load(req.ToSubmission())

	start := time.Now()
	err := form.Submit(c.Request.Context())
	elapsed := time.Since(start)

	status, outcome := http.StatusOK, metrics.OutcomeSent
	switch {
	case err == nil:
	case errors.Is(err, contact.ErrValidation):
		status, outcome, elapsed = http.StatusUnprocessableEntity, metrics.OutcomeInvalid, 0
	case errors.Is(err, contact.ErrServerRejected), errors.Is(err, contact.ErrMalformedResponse):
		status, outcome = http.StatusBadGateway, metrics.OutcomeRejected
	default:
		status, outcome = http.StatusBadGateway, metrics.OutcomeFailed
	}
	h.metrics.ObserveContact(outcome, elapsed)

	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		h.respondJSON(c, status, err, form, note)
		return
	}

	h.render(c, status, components.ContactFormView{
		Fields:       form.Fields(),
		Submitting:   form.Submitting(),
		Notification: note,
	})
}

func (h *LandingHandler) respondJSON(c *gin.Context, status int, err error, form *contact.Form, note *contact.Notification) {
	resp := contactdto.ContactResponse{
		Sent:         err == nil,
		Notification: note,
		Fields:       form.Fields(),
	}

	switch {
	case err == nil:
		utils.HandleSuccess(c, resp)
	case errors.Is(err, contact.ErrValidation):
		c.JSON(status, common.NewErrorResponse(
			common.ErrCodeValidation,
			"Please fill in the required fields",
			validation.FormatValidationError(err),
		))
	default:
		body := common.NewErrorResponse(common.ErrCodeBadGateway, contact.NotificationFor(err).Description, nil)
		body.Data = resp
		c.JSON(status, body)
	}
}
