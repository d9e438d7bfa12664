package mapper

import (
	"testing"
	"time"

	"github.com/MKhiriev/yoga-studio/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	created = time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	updated = time.Date(2026, 1, 11, 9, 0, 0, 0, time.UTC)
)

func int64Ptr(v int64) *int64 { return &v }

func TestUserToDTO_OmitsPassword(t *testing.T) {
	user := models.User{
		ID:        7,
		Email:     "yoga@studio.com",
		FirstName: "Yoga",
		LastName:  "Studio",
		Password:  "$2a$10$hash",
		Admin:     true,
		CreatedAt: created,
		UpdatedAt: updated,
	}

	dto := UserToDTO(user)

	assert.Equal(t, models.UserDTO{
		ID:        7,
		Email:     "yoga@studio.com",
		FirstName: "Yoga",
		LastName:  "Studio",
		Admin:     true,
		CreatedAt: created,
		UpdatedAt: updated,
	}, dto)
}

func TestUsersToDTO_Empty(t *testing.T) {
	dtos := UsersToDTO(nil)
	require.NotNil(t, dtos)
	assert.Empty(t, dtos)
}

func TestTeachersToDTO(t *testing.T) {
	teachers := []models.Teacher{
		{ID: 1, FirstName: "Margot", LastName: "DELAHAYE"},
		{ID: 2, FirstName: "Hélène", LastName: "THIERCELIN"},
	}

	dtos := TeachersToDTO(teachers)

	require.Len(t, dtos, 2)
	assert.Equal(t, int64(1), dtos[0].ID)
	assert.Equal(t, "THIERCELIN", dtos[1].LastName)
}

func TestSessionToDTO(t *testing.T) {
	tests := []struct {
		name    string
		session models.Session
		want    models.SessionDTO
	}{
		{
			name: "with teacher and participants",
			session: models.Session{
				ID:          3,
				Name:        "Morning flow",
				Date:        models.NewDate(created),
				Description: "Vinyasa",
				Teacher:     &models.Teacher{ID: 1, FirstName: "Margot"},
				Users:       []models.User{{ID: 5}, {ID: 9}},
				CreatedAt:   created,
				UpdatedAt:   updated,
			},
			want: models.SessionDTO{
				ID:          3,
				Name:        "Morning flow",
				Date:        models.NewDate(created),
				TeacherID:   int64Ptr(1),
				Description: "Vinyasa",
				Users:       []int64{5, 9},
				CreatedAt:   created,
				UpdatedAt:   updated,
			},
		},
		{
			name:    "without teacher and participants",
			session: models.Session{ID: 4, Name: "Open"},
			want:    models.SessionDTO{ID: 4, Name: "Open", Users: []int64{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SessionToDTO(tt.session))
		})
	}
}

func TestSessionToEntity_BuildsStubs(t *testing.T) {
	dto := models.SessionDTO{
		ID:          3,
		Name:        "Morning flow",
		Date:        models.NewDate(created),
		TeacherID:   int64Ptr(2),
		Description: "Vinyasa",
		Users:       []int64{9, 5, 9},
	}

	session := SessionToEntity(dto)

	require.NotNil(t, session.Teacher)
	assert.Equal(t, models.Teacher{ID: 2}, *session.Teacher)
	assert.Equal(t, []models.User{{ID: 9}, {ID: 5}}, session.Users)
	assert.Equal(t, "Morning flow", session.Name)
	assert.Equal(t, models.NewDate(created), session.Date)
}

func TestSessionToEntity_NoTeacher(t *testing.T) {
	session := SessionToEntity(models.SessionDTO{Name: "Open"})

	assert.Nil(t, session.Teacher)
	assert.NotNil(t, session.Users)
	assert.Empty(t, session.Users)
}

func TestSessionRoundTrip_KeepsReferences(t *testing.T) {
	dto := models.SessionDTO{
		ID:        8,
		Name:      "Evening",
		TeacherID: int64Ptr(1),
		Users:     []int64{1, 2, 3},
	}

	assert.Equal(t, dto, SessionToDTO(SessionToEntity(dto)))
}

func TestPrincipalFromUser(t *testing.T) {
	user := models.User{ID: 1, Email: "yoga@studio.com", FirstName: "Admin", LastName: "Admin", Admin: true, Password: "hash"}

	principal := PrincipalFromUser(user)

	assert.Equal(t, models.Principal{
		ID:        1,
		Username:  "yoga@studio.com",
		FirstName: "Admin",
		LastName:  "Admin",
		Admin:     true,
		Password:  "hash",
	}, principal)
	assert.True(t, principal.Owns(user))
}
