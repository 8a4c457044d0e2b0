package middleware

import (
	"net/http"

	"github.com/aspireai/aspire-site/internal/api/constants"
	"github.com/aspireai/aspire-site/internal/api/dto/common"
	"github.com/aspireai/aspire-site/internal/api/dto/v1/contact"

	"github.com/gin-gonic/gin"
)

// BindContactRequest binds a posted contact form (form-encoded or JSON) and
// stores it in the context. Required-field rules are not checked here: the
// contact form applies them so a rejected post can be re-rendered with its values.
func BindContactRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contact.ContactRequest
		if err := c.ShouldBind(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, common.NewErrorResponse(
				common.ErrCodeBadRequest,
				"Invalid request body",
				nil,
			))
			return
		}

		c.Set(constants.ContextKeyContact, &req)
		c.Next()
	}
}
