package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig controls the headers written by CORSMiddleware.
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	// PreflightStatus is returned for OPTIONS requests with an empty body.
	PreflightStatus int
}

// DefaultCORSConfig is what the dashboard expects from both services: any
// origin, the common methods and the auth headers.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins:  []string{"*"},
		AllowedMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:  []string{"Content-Type", "Authorization"},
		PreflightStatus: http.StatusOK,
	}
}

// CORSMiddleware decorates every response and answers preflight requests
// itself, before routing and authentication run.
func CORSMiddleware(cfg CORSConfig) gin.HandlerFunc {
	headers := map[string]string{
		"Access-Control-Allow-Origin":  strings.Join(cfg.AllowedOrigins, ", "),
		"Access-Control-Allow-Methods": strings.Join(cfg.AllowedMethods, ", "),
		"Access-Control-Allow-Headers": strings.Join(cfg.AllowedHeaders, ", "),
	}
	preflight := cfg.PreflightStatus
	if preflight == 0 {
		preflight = http.StatusOK
	}

	return func(c *gin.Context) {
		for k, v := range headers {
			c.Header(k, v)
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(preflight)
			return
		}
		c.Next()
	}
}
