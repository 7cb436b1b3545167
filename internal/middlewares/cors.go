package middlewares

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/neet-mastery/mastery-lambda/internal/config"
)

// CorsMiddleware allows the origins listed in CORS_ORIGINS, with credentials so the
// session cookie travels. With no list every origin is allowed.
func CorsMiddleware(next http.Handler) http.Handler {
	origins := config.GetenvList("CORS_ORIGINS")
	if len(origins) == 0 {
		origins = []string{"https://*", "http://*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	})(next)
}
