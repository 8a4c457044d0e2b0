package routes

import (
	"io/fs"
	"net/http"

	"github.com/aspireai/aspire-site/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// SetupLandingRoutes serves the page and its static assets
func SetupLandingRoutes(router *gin.Engine, landing *handlers.LandingHandler, static fs.FS) {
	router.GET("/", landing.Show)
	router.StaticFS("/static", http.FS(static))
}
