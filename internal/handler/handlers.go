// Package handler assembles the transport handlers exposed by the server.
package handler

import (
	"github.com/MKhiriev/yoga-studio/internal/config"
	"github.com/MKhiriev/yoga-studio/internal/handler/http"
	"github.com/MKhiriev/yoga-studio/internal/logger"
	"github.com/MKhiriev/yoga-studio/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServices
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
