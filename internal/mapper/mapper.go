// Package mapper converts between persisted entities and their wire DTOs.
//
// Every function here is pure: no I/O and no access to services or
// repositories. Foreign keys in a DTO become reference stubs (entities
// carrying only an ID); replacing the stubs with loaded records is the
// service layer's job.
package mapper

import "github.com/MKhiriev/yoga-studio/models"

// UserToDTO drops the password hash.
func UserToDTO(user models.User) models.UserDTO {
	return models.UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Admin:     user.Admin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func UsersToDTO(users []models.User) []models.UserDTO {
	dtos := make([]models.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, UserToDTO(u))
	}
	return dtos
}

func TeacherToDTO(teacher models.Teacher) models.TeacherDTO {
	return models.TeacherDTO{
		ID:        teacher.ID,
		FirstName: teacher.FirstName,
		LastName:  teacher.LastName,
		CreatedAt: teacher.CreatedAt,
		UpdatedAt: teacher.UpdatedAt,
	}
}

func TeachersToDTO(teachers []models.Teacher) []models.TeacherDTO {
	dtos := make([]models.TeacherDTO, 0, len(teachers))
	for _, t := range teachers {
		dtos = append(dtos, TeacherToDTO(t))
	}
	return dtos
}

// SessionToDTO flattens the teacher to its id and the participants to an id
// list. The list is empty, never nil, for a session without participants.
func SessionToDTO(session models.Session) models.SessionDTO {
	dto := models.SessionDTO{
		ID:          session.ID,
		Name:        session.Name,
		Date:        session.Date,
		Description: session.Description,
		Users:       session.ParticipantIDs(),
		CreatedAt:   session.CreatedAt,
		UpdatedAt:   session.UpdatedAt,
	}

	if session.Teacher != nil {
		teacherID := session.Teacher.ID
		dto.TeacherID = &teacherID
	}

	return dto
}

func SessionsToDTO(sessions []models.Session) []models.SessionDTO {
	dtos := make([]models.SessionDTO, 0, len(sessions))
	for _, s := range sessions {
		dtos = append(dtos, SessionToDTO(s))
	}
	return dtos
}

// SessionToEntity builds a session whose Teacher and Users are reference
// stubs. Duplicate participant ids are collapsed, first occurrence wins.
func SessionToEntity(dto models.SessionDTO) models.Session {
	session := models.Session{
		ID:          dto.ID,
		Name:        dto.Name,
		Date:        dto.Date,
		Description: dto.Description,
		Users:       make([]models.User, 0, len(dto.Users)),
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	}

	if dto.TeacherID != nil {
		session.Teacher = &models.Teacher{ID: *dto.TeacherID}
	}

	seen := make(map[int64]struct{}, len(dto.Users))
	for _, id := range dto.Users {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		session.Users = append(session.Users, models.User{ID: id})
	}

	return session
}

// PrincipalFromUser builds the request principal. The username is the email.
func PrincipalFromUser(user models.User) models.Principal {
	return models.Principal{
		ID:        user.ID,
		Username:  user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Admin:     user.Admin,
		Password:  user.Password,
	}
}
