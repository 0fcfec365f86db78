package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/avelichko/linksense/app/auth"
)

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler, verifier *auth.Verifier, allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	r.Use(corsMiddleware(allowedOrigins))

	setupRoutes(r, handler, verifier)

	return r
}

// corsMiddleware allows only the configured browser-extension origins, with
// credentials, since the extension sends the session token cross-origin.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if allowed[origin] {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler, verifier *auth.Verifier) {
	// Diagnostic endpoint, deliberately outside the auth group
	r.GET("/test-route", handler.GetTestRoute)

	authorized := r.Group("/")
	authorized.Use(auth.Middleware(verifier))
	{
		authorized.POST("/subscription-check", handler.PostSubscriptionCheck)
		authorized.GET("/get-subscription-token", handler.GetSubscriptionToken)
		authorized.POST("/classify", handler.PostClassify)
	}

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}
