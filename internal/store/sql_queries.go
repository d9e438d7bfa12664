package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/yoga-studio/models"
)

const (
	usersTable       = "users"
	teachersTable    = "teachers"
	sessionsTable    = "sessions"
	participateTable = "participate"
)

var (
	userColumns = []string{
		"id", "email", "first_name", "last_name", "password", "admin", "created_at", "updated_at",
	}

	teacherColumns = []string{
		"id", "first_name", "last_name", "created_at", "updated_at",
	}

	// sessionColumns selects a session joined with its (optional) teacher.
	sessionColumns = []string{
		"s.id", "s.name", "s.date", "s.description", "s.created_at", "s.updated_at",
		"t.id", "t.first_name", "t.last_name", "t.created_at", "t.updated_at",
	}

	// participantColumns selects a participant user without the password hash.
	participantColumns = []string{
		"p.session_id", "u.id", "u.email", "u.first_name", "u.last_name", "u.admin", "u.created_at", "u.updated_at",
	}
)

// ── users ─────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "first_name", "last_name", "password", "admin", "created_at", "updated_at").
		Values(user.Email, user.FirstName, user.LastName, user.Password, user.Admin, user.CreatedAt, user.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildExistsUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select("COUNT(1)").
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Update(usersTable).
		Set("email", user.Email).
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("password", user.Password).
		Set("admin", user.Admin).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
}

func buildDeleteUserQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── teachers ──────────────────────────────────────────────────────────────────

func buildSelectTeachersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(teacherColumns...).
		From(teachersTable).
		OrderBy("id").
		ToSql()
}

func buildSelectTeacherByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(teacherColumns...).
		From(teachersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── sessions ──────────────────────────────────────────────────────────────────

func selectSessions(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(sessionColumns...).
		From(sessionsTable + " s").
		LeftJoin(teachersTable + " t ON t.id = s.teacher_id")
}

func buildSelectSessionsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return selectSessions(b).
		OrderBy("s.id").
		ToSql()
}

func buildSelectSessionByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return selectSessions(b).
		Where(sq.Eq{"s.id": id}).
		ToSql()
}

// buildSelectParticipantsQuery loads the participants of the given sessions
// in insertion order.
func buildSelectParticipantsQuery(b sq.StatementBuilderType, sessionIDs []int64) (string, []any, error) {
	return b.Select(participantColumns...).
		From(participateTable + " p").
		Join(usersTable + " u ON u.id = p.user_id").
		Where(sq.Eq{"p.session_id": sessionIDs}).
		OrderBy("p.session_id", "p.position").
		ToSql()
}

func buildInsertSessionQuery(b sq.StatementBuilderType, session models.Session) (string, []any, error) {
	return b.Insert(sessionsTable).
		Columns("name", "date", "teacher_id", "description", "created_at", "updated_at").
		Values(session.Name, session.Date, teacherID(session), session.Description, session.CreatedAt, session.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
}

func buildUpdateSessionQuery(b sq.StatementBuilderType, session models.Session) (string, []any, error) {
	return b.Update(sessionsTable).
		Set("name", session.Name).
		Set("date", session.Date).
		Set("teacher_id", teacherID(session)).
		Set("description", session.Description).
		Set("updated_at", session.UpdatedAt).
		Where(sq.Eq{"id": session.ID}).
		ToSql()
}

func buildSelectSessionCreatedAtQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select("created_at").
		From(sessionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(sessionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildInsertParticipantsQuery inserts one row per participant; position
// keeps the list order.
func buildInsertParticipantsQuery(b sq.StatementBuilderType, sessionID int64, users []models.User) (string, []any, error) {
	query := b.Insert(participateTable).Columns("session_id", "user_id", "position")
	for position, user := range users {
		query = query.Values(sessionID, user.ID, position)
	}
	return query.ToSql()
}

func buildDeleteParticipantsOfSessionQuery(b sq.StatementBuilderType, sessionID int64) (string, []any, error) {
	return b.Delete(participateTable).
		Where(sq.Eq{"session_id": sessionID}).
		ToSql()
}

func buildDeleteParticipationsOfUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(participateTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func teacherID(session models.Session) any {
	if session.Teacher == nil {
		return nil
	}
	return session.Teacher.ID
}

// now is the repositories' clock; timestamps are stored in UTC.
var now = func() time.Time {
	return time.Now().UTC()
}
