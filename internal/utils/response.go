package utils

import (
	"net/http"

	"github.com/aspireai/aspire-site/internal/api/dto/common"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
)

// HandleSuccess sends a success response with data
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(data))
}

// RenderHTML writes a gomponents node as an HTML response
func RenderHTML(c *gin.Context, status int, node g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := node.Render(c.Writer); err != nil {
		LogError(err, "Failed to render page")
	}
}
