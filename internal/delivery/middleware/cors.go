package middleware

import (
	"log/slog"
	"net/http"

	"storefront/config"

	"github.com/labstack/echo/v4"
	"github.com/rs/cors"
)

// CORSMiddleware wraps rs/cors. Preflight requests are answered with 200.
type CORSMiddleware struct {
	cors *cors.Cors
}

// NewCORSMiddleware builds the CORS policy from configuration. Without
// configured origins every origin is allowed.
func NewCORSMiddleware(logger *slog.Logger, cfg *config.Config) *CORSMiddleware {
	origins := []string{"*"}
	if len(cfg.HTTP.CORS.AllowedOrigins) > 0 {
		origins = cfg.HTTP.CORS.AllowedOrigins
	}

	logger.Debug("CORS policy configured", slog.Any("allowedOrigins", origins))

	return &CORSMiddleware{
		cors: cors.New(cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPut,
				http.MethodPatch, http.MethodDelete, http.MethodOptions,
			},
			AllowedHeaders:       []string{"Authorization", "Content-Type", "X-Request-Id"},
			ExposedHeaders:       []string{"X-Request-Id", "Content-Disposition"},
			AllowCredentials:     false,
			OptionsSuccessStatus: http.StatusOK,
		}),
	}
}

// Handle applies the CORS headers and short-circuits preflight requests.
func (m *CORSMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return echo.WrapMiddleware(m.cors.Handler)(next)
}

// Preflight answers any remaining OPTIONS request with an empty 200, so
// every route accepts it even when no CORS headers were sent.
func Preflight(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}

		return next(c)
	}
}
