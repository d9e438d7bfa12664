package service

import (
	"context"

	"github.com/MKhiriev/yoga-studio/internal/logger"
	"github.com/MKhiriev/yoga-studio/internal/store"
	"github.com/MKhiriev/yoga-studio/models"
)

type teacherService struct {
	teacherRepository store.TeacherRepository

	logger *logger.Logger
}

func NewTeacherService(teacherRepository store.TeacherRepository, logger *logger.Logger) TeacherService {
	return &teacherService{
		teacherRepository: teacherRepository,
		logger:            logger,
	}
}

func (s *teacherService) FindAll(ctx context.Context) ([]models.Teacher, error) {
	return s.teacherRepository.FindAll(ctx)
}

func (s *teacherService) FindByID(ctx context.Context, id int64) (models.Teacher, error) {
	teacher, err := s.teacherRepository.FindByID(ctx, id)
	if err != nil {
		return models.Teacher{}, mapStoreError(err)
	}

	return teacher, nil
}
