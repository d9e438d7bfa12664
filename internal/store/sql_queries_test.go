// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/yoga-studio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pgBuilder     = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	sqliteBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildInsertUserQuery(t *testing.T) {
	ts := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := models.User{
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Martin",
		Password:  "hash",
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	query, args, err := buildInsertUserQuery(pgBuilder, user)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into users")
	assert.Contains(t, q, "returning id")
	assert.Contains(t, query, "$7")
	assert.Equal(t, []any{"alice@example.com", "Alice", "Martin", "hash", false, ts, ts}, args)
}

func Test_buildSelectUserQueries_Placeholders(t *testing.T) {
	tests := []struct {
		name        string
		builder     sq.StatementBuilderType
		placeholder string
	}{
		{name: "postgres", builder: pgBuilder, placeholder: "$1"},
		{name: "sqlite", builder: sqliteBuilder, placeholder: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectUserByEmailQuery(tt.builder, "alice@example.com")
			require.NoError(t, err)
			assert.Contains(t, query, "email = "+tt.placeholder)
			assert.Equal(t, []any{"alice@example.com"}, args)

			query, args, err = buildSelectUserByIDQuery(tt.builder, 7)
			require.NoError(t, err)
			assert.Contains(t, query, "id = "+tt.placeholder)
			assert.Equal(t, []any{int64(7)}, args)
		})
	}
}

func Test_buildSelectUserByIDQuery_SelectsAllColumns(t *testing.T) {
	query, _, err := buildSelectUserByIDQuery(pgBuilder, 1)
	require.NoError(t, err)

	for _, col := range userColumns {
		assert.Contains(t, query, col)
	}
	assert.Contains(t, strings.ToLower(query), "from users")
}

func Test_buildExistsUserByEmailQuery(t *testing.T) {
	query, args, err := buildExistsUserByEmailQuery(pgBuilder, "bob@example.com")
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(1) FROM users WHERE email = $1", query)
	assert.Equal(t, []any{"bob@example.com"}, args)
}

func Test_buildUpdateUserQuery(t *testing.T) {
	ts := time.Now().UTC()
	query, args, err := buildUpdateUserQuery(pgBuilder, models.User{ID: 3, Email: "e@x.io", Admin: true, UpdatedAt: ts})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.True(t, strings.HasPrefix(q, "update users set"))
	assert.Contains(t, q, "where id = $7")
	assert.Equal(t, int64(3), args[len(args)-1])
	assert.NotContains(t, q, "created_at")
}

func Test_buildDeleteUserQuery(t *testing.T) {
	query, args, err := buildDeleteUserQuery(sqliteBuilder, 9)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM users WHERE id = ?", query)
	assert.Equal(t, []any{int64(9)}, args)
}

func Test_buildSelectTeachersQuery(t *testing.T) {
	query, args, err := buildSelectTeachersQuery(pgBuilder)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, first_name, last_name, created_at, updated_at FROM teachers ORDER BY id", query)
	assert.Empty(t, args)
}

func Test_buildSelectSessionByIDQuery_JoinsTeacher(t *testing.T) {
	query, args, err := buildSelectSessionByIDQuery(pgBuilder, 5)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from sessions s")
	assert.Contains(t, q, "left join teachers t on t.id = s.teacher_id")
	assert.Contains(t, q, "where s.id = $1")
	assert.Equal(t, []any{int64(5)}, args)
}

func Test_buildSelectSessionsQuery_Ordered(t *testing.T) {
	query, _, err := buildSelectSessionsQuery(pgBuilder)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(query, "ORDER BY s.id"))
}

func Test_buildSelectParticipantsQuery(t *testing.T) {
	query, args, err := buildSelectParticipantsQuery(pgBuilder, []int64{1, 2, 3})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "join users u on u.id = p.user_id")
	assert.Contains(t, q, "p.session_id in ($1,$2,$3)")
	assert.Contains(t, q, "order by p.session_id, p.position")
	assert.NotContains(t, q, "password")
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, args)
}

func Test_buildInsertSessionQuery_TeacherID(t *testing.T) {
	date := models.NewDate(time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC))

	t.Run("with teacher", func(t *testing.T) {
		_, args, err := buildInsertSessionQuery(pgBuilder, models.Session{
			Name: "Morning flow", Date: date, Teacher: &models.Teacher{ID: 2}, Description: "d",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), args[2])
	})

	t.Run("without teacher", func(t *testing.T) {
		query, args, err := buildInsertSessionQuery(pgBuilder, models.Session{Name: "Solo", Date: date})
		require.NoError(t, err)
		assert.Nil(t, args[2])
		assert.Contains(t, strings.ToLower(query), "returning id")
	})
}

func Test_buildInsertParticipantsQuery_KeepsOrder(t *testing.T) {
	users := []models.User{{ID: 30}, {ID: 10}, {ID: 20}}

	query, args, err := buildInsertParticipantsQuery(pgBuilder, 4, users)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO participate (session_id,user_id,position) VALUES ($1,$2,$3),($4,$5,$6),($7,$8,$9)", query)
	assert.Equal(t, []any{
		int64(4), int64(30), 0,
		int64(4), int64(10), 1,
		int64(4), int64(20), 2,
	}, args)
}

func Test_buildDeleteParticipantsQueries(t *testing.T) {
	query, args, err := buildDeleteParticipantsOfSessionQuery(pgBuilder, 4)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM participate WHERE session_id = $1", query)
	assert.Equal(t, []any{int64(4)}, args)

	query, args, err = buildDeleteParticipationsOfUserQuery(pgBuilder, 8)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM participate WHERE user_id = $1", query)
	assert.Equal(t, []any{int64(8)}, args)
}
