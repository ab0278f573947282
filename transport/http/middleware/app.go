package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"hus/config"
)

type AppMiddleware interface {
	CORS(http.Handler) http.Handler
	RequestLogger(http.Handler) http.Handler
}

type appMiddleware struct {
	config *config.Config
}

func NewAppMiddleware(config *config.Config) AppMiddleware {
	return &appMiddleware{
		config: config,
	}
}

// CORS applies the configured cross-origin policy. Disabled policies pass
// requests through untouched.
func (a *appMiddleware) CORS(next http.Handler) http.Handler {
	corsConfig := a.config.App.CORS
	if !corsConfig.Enable {
		return next
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   corsConfig.AllowedOrigins,
		AllowedMethods:   corsConfig.AllowedMethods,
		AllowedHeaders:   corsConfig.AllowedHeaders,
		AllowCredentials: corsConfig.AllowCredentials,
		MaxAge:           corsConfig.MaxAgeSeconds,
	})(next)
}

// RequestLogger emits one structured log line per request.
func (a *appMiddleware) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		start := time.Now()
		wrapped := chimiddleware.NewWrapResponseWriter(writer, request.ProtoMajor)

		next.ServeHTTP(wrapped, request)

		log.Info().
			Str("method", request.Method).
			Str("path", request.URL.Path).
			Int("status", wrapped.Status()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
