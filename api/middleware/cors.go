package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/dailyneed/storefront-backend/pkg/config"
)

// CORS returns middleware that applies the configured browser origin policy.
// The storefront runs on Vite's dev port by default.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
