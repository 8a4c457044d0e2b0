package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Third-party origins the landing page loads scripts and assets from
var (
	scriptSources = []string{
		"'self'",
		"https://cdn.tailwindcss.com",
		"https://code.iconify.design",
		// iconify 1.x loads icon sets as JSONP scripts
		"https://api.iconify.design",
		"https://widgets.leadconnectorhq.com",
	}
	connectSources = []string{
		"'self'",
		"https://api.iconify.design",
		"https://*.leadconnectorhq.com",
	}
)

// SecurityHeaders middleware adds various security headers to protect against common web vulnerabilities
func SecurityHeaders() gin.HandlerFunc {
	csp := strings.Join([]string{
		"default-src 'self'",
		"script-src " + strings.Join(scriptSources, " "),
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data: https://raw.githubusercontent.com https://*.leadconnectorhq.com",
		"font-src 'self' data:",
		"connect-src " + strings.Join(connectSources, " "),
		"frame-src https://*.leadconnectorhq.com",
		"form-action 'self'",
	}, "; ")

	return func(c *gin.Context) {
		// Prevent clickjacking attacks
		c.Header("X-Frame-Options", "DENY")

		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Enforce HTTPS
		c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")

		// Control browser features and APIs
		c.Header("Permissions-Policy", "accelerometer=(), camera=(), geolocation=(), gyroscope=(), magnetometer=(), payment=(), usb=()")

		c.Header("Content-Security-Policy", csp)

		// Prevent browsers from sending the Referer header when navigating from HTTPS to HTTP
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")

		c.Next()
	}
}
