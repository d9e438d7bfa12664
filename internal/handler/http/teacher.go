package http

import (
	"net/http"

	"github.com/MKhiriev/yoga-studio/internal/mapper"
	"github.com/MKhiriev/yoga-studio/internal/utils"
)

func (h *Handler) findAllTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.services.TeacherService.FindAll(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.findAllTeachers")
		return
	}

	utils.WriteJSON(w, mapper.TeachersToDTO(teachers), http.StatusOK)
}

func (h *Handler) findTeacher(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err, "*Handler.findTeacher")
		return
	}

	teacher, err := h.services.TeacherService.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "*Handler.findTeacher")
		return
	}

	utils.WriteJSON(w, mapper.TeacherToDTO(teacher), http.StatusOK)
}
