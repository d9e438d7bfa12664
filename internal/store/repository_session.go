package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/yoga-studio/internal/logger"
	"github.com/MKhiriev/yoga-studio/models"
)

// sessionRepository is the database/sql implementation of [SessionRepository].
//
// A session lives in the "sessions" table; its participants live in
// "participate" with a position column that preserves the list order.
// Writes touching both tables run in one transaction.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts the session and its participants. The teacher and users of
// the session must already exist; only their IDs are written.
func (r *sessionRepository) Create(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	session.CreatedAt = now()
	session.UpdatedAt = session.CreatedAt

	err := r.db.runInTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildInsertSessionQuery(r.db.builder, session)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&session.ID); err != nil {
			return r.classifyWriteError(err)
		}

		return r.insertParticipants(ctx, tx, session.ID, session.Users)
	})
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Create").Msg("error creating session")
		return models.Session{}, err
	}

	log.Debug().Str("func", "*sessionRepository.Create").
		Int64("session_id", session.ID).
		Int("participants", len(session.Users)).
		Msg("session created")

	return session, nil
}

func (r *sessionRepository) FindAll(ctx context.Context) ([]models.Session, error) {
	query, args, err := buildSelectSessionsQuery(r.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	sessions, err := r.selectSessions(ctx, "*sessionRepository.FindAll", query, args)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

func (r *sessionRepository) FindByID(ctx context.Context, id int64) (models.Session, error) {
	query, args, err := buildSelectSessionByIDQuery(r.db.builder, id)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	sessions, err := r.selectSessions(ctx, "*sessionRepository.FindByID", query, args)
	if err != nil {
		return models.Session{}, err
	}
	if len(sessions) == 0 {
		return models.Session{}, ErrSessionNotFound
	}

	return sessions[0], nil
}

// Update rewrites the session row and replaces its participant rows.
func (r *sessionRepository) Update(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	session.UpdatedAt = now()

	err := r.db.runInTx(ctx, func(tx *sql.Tx) error {
		query, args, err := buildSelectSessionCreatedAtQuery(r.db.builder, session.ID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		err = tx.QueryRowContext(ctx, query, args...).Scan(&session.CreatedAt)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		query, args, err = buildUpdateSessionQuery(r.db.builder, session)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return r.classifyWriteError(err)
		}

		if err := r.deleteParticipants(ctx, tx, session.ID); err != nil {
			return err
		}

		return r.insertParticipants(ctx, tx, session.ID, session.Users)
	})
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Update").Int64("session_id", session.ID).Msg("error updating session")
		return models.Session{}, err
	}

	return session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	err := r.db.runInTx(ctx, func(tx *sql.Tx) error {
		if err := r.deleteParticipants(ctx, tx, id); err != nil {
			return err
		}

		query, args, err := buildDeleteSessionQuery(r.db.builder, id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected, _ := result.RowsAffected(); affected == 0 {
			return ErrSessionNotFound
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.Delete").Int64("session_id", id).Msg("error deleting session")
		return err
	}

	return nil
}

func (r *sessionRepository) DeleteParticipationsOfUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteParticipationsOfUserQuery(r.db.builder, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteParticipationsOfUser").Int64("user_id", userID).Msg("error deleting participations")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := result.RowsAffected()
	log.Debug().Str("func", "*sessionRepository.DeleteParticipationsOfUser").
		Int64("user_id", userID).
		Int64("removed", affected).
		Msg("participations removed")

	return nil
}

// selectSessions runs a session query and attaches the participants of every
// returned session with one additional query. The session rows are closed
// before the second query so a single-connection pool does not block.
func (r *sessionRepository) selectSessions(ctx context.Context, funcName, query string, args []any) ([]models.Session, error) {
	log := logger.FromContext(ctx)

	sessions, err := r.querySessions(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying sessions")
		return nil, err
	}

	if len(sessions) == 0 {
		return sessions, nil
	}

	if err := r.attachParticipants(ctx, r.db, sessions); err != nil {
		log.Err(err).Str("func", funcName).Msg("error loading participants")
		return nil, err
	}

	return sessions, nil
}

func (r *sessionRepository) querySessions(ctx context.Context, query string, args []any) ([]models.Session, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	sessions := make([]models.Session, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return sessions, nil
}

func (r *sessionRepository) attachParticipants(ctx context.Context, q queryer, sessions []models.Session) error {
	ids := make([]int64, 0, len(sessions))
	index := make(map[int64]int, len(sessions))
	for i, s := range sessions {
		ids = append(ids, s.ID)
		index[s.ID] = i
	}

	query, args, err := buildSelectParticipantsQuery(r.db.builder, ids)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var sessionID int64
		var user models.User
		if err := rows.Scan(&sessionID, &user.ID, &user.Email, &user.FirstName, &user.LastName,
			&user.Admin, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if i, ok := index[sessionID]; ok {
			sessions[i].Users = append(sessions[i].Users, user)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

func (r *sessionRepository) insertParticipants(ctx context.Context, q queryer, sessionID int64, users []models.User) error {
	if len(users) == 0 {
		return nil
	}

	query, args, err := buildInsertParticipantsQuery(r.db.builder, sessionID, users)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		if r.db.classify(err) == ForeignKeyViolation {
			return ErrUserNotFound
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) deleteParticipants(ctx context.Context, q queryer, sessionID int64) error {
	query, args, err := buildDeleteParticipantsOfSessionQuery(r.db.builder, sessionID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// classifyWriteError maps a failed session insert or update.
func (r *sessionRepository) classifyWriteError(err error) error {
	switch r.db.classify(err) {
	case ForeignKeyViolation:
		return ErrTeacherNotFound
	case Retryable:
		return err
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

func scanSession(rows *sql.Rows) (models.Session, error) {
	var (
		session          models.Session
		teacherID        sql.NullInt64
		teacherFirstName sql.NullString
		teacherLastName  sql.NullString
		teacherCreatedAt sql.NullTime
		teacherUpdatedAt sql.NullTime
	)

	err := rows.Scan(
		&session.ID, &session.Name, &session.Date, &session.Description, &session.CreatedAt, &session.UpdatedAt,
		&teacherID, &teacherFirstName, &teacherLastName, &teacherCreatedAt, &teacherUpdatedAt,
	)
	if err != nil {
		return models.Session{}, err
	}

	if teacherID.Valid {
		session.Teacher = &models.Teacher{
			ID:        teacherID.Int64,
			FirstName: teacherFirstName.String,
			LastName:  teacherLastName.String,
			CreatedAt: teacherCreatedAt.Time,
			UpdatedAt: teacherUpdatedAt.Time,
		}
	}

	session.Users = make([]models.User, 0)
	return session, nil
}
