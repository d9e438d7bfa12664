package service

import (
	"github.com/MKhiriev/yoga-studio/internal/config"
	"github.com/MKhiriev/yoga-studio/internal/logger"
	"github.com/MKhiriev/yoga-studio/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	TeacherService TeacherService
	SessionService SessionService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	sessionService := NewSessionValidationService().Wrap(
		NewSessionService(storages.SessionRepository, storages.TeacherRepository, storages.UserRepository, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, storages.SessionRepository, logger),
		TeacherService: NewTeacherService(storages.TeacherRepository, logger),
		SessionService: sessionService,
		AppInfoService: appInfoService,
	}, nil
}
