package http

import (
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
)

// maxRequestBodyBytes caps every JSON request body.
const maxRequestBodyBytes = 1 << 20

type Handler struct {
	services *service.Services

	cookie         cookieSettings
	allowedOrigins []string
	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. tokenDuration sets the lifetime of the
// session cookie and should match the token expiry.
func NewHandler(services *service.Services, cfg config.Server, tokenDuration time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cookie: cookieSettings{
			maxAge: tokenDuration,
			secure: cfg.SecureCookies,
		},
		allowedOrigins: cfg.AllowedOrigins,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
