package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/yoga-studio/internal/logger"
	"github.com/MKhiriev/yoga-studio/models"
)

// teacherRepository reads the "teachers" table. Teachers are seeded by
// migrations and never written by the application.
type teacherRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewTeacherRepository(db *DB, logger *logger.Logger) TeacherRepository {
	logger.Debug().Msg("creating teacher repository")
	return &teacherRepository{
		db:     db,
		logger: logger,
	}
}

func (r *teacherRepository) FindAll(ctx context.Context) ([]models.Teacher, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTeachersQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*teacherRepository.FindAll").Msg("error querying teachers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	teachers := make([]models.Teacher, 0)
	for rows.Next() {
		var teacher models.Teacher
		if err := rows.Scan(&teacher.ID, &teacher.FirstName, &teacher.LastName, &teacher.CreatedAt, &teacher.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*teacherRepository.FindAll").Msg("error scanning teacher row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		teachers = append(teachers, teacher)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return teachers, nil
}

func (r *teacherRepository) FindByID(ctx context.Context, id int64) (models.Teacher, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTeacherByIDQuery(r.db.builder, id)
	if err != nil {
		return models.Teacher{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var teacher models.Teacher
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&teacher.ID, &teacher.FirstName, &teacher.LastName, &teacher.CreatedAt, &teacher.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Teacher{}, ErrTeacherNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*teacherRepository.FindByID").Int64("teacher_id", id).Msg("error scanning teacher")
		return models.Teacher{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return teacher, nil
}
