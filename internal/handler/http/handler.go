package http

import (
	"github.com/MKhiriev/yoga-studio/internal/config"
	"github.com/MKhiriev/yoga-studio/internal/logger"
	"github.com/MKhiriev/yoga-studio/internal/service"
	"github.com/MKhiriev/yoga-studio/internal/validators"
)

// Handler serves the REST API. It owns the request validator and the
// server settings used while building the middleware chain.
type Handler struct {
	services  *service.Services
	validator validators.Validator
	cfg       config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewDTOValidator(),
		cfg:       cfg,
		logger:    logger,
	}
}
