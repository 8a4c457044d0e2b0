package handlers

import (
	"net/http"

	"github.com/aspireai/aspire-site/internal/api/dto/common"
	"github.com/aspireai/aspire-site/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check reports liveness. The Contact API is not probed; its failures
// surface per submission.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, common.HealthResponse{
		Status:  "ok",
		Version: version.GetVersionString(),
	})
}
