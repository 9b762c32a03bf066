package middleware

import (
	"net/http"

	"github.com/rs/cors"
	"github.com/yigit/coursecatalog/internal/config"
)

// CORS wraps the handler with the configured cross-origin policy.
// The handler is returned unchanged when CORS is disabled.
func CORS(cfg *config.Config, next http.Handler) http.Handler {
	if !cfg.CORS.Enabled {
		return next
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: cfg.CORS.AllowCredentials,
	})
	return c.Handler(next)
}
