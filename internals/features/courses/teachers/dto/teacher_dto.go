package dto

import (
	"time"

	"github.com/google/uuid"

	"ciaocraft_backend/internals/features/courses/teachers/model"
)

type CreateTeacherRequest struct {
	TeacherName   string  `json:"teacherName" validate:"required,max=100"`
	TeacherIntro  *string `json:"teacherIntro,omitempty"`
	TeacherAvatar *string `json:"teacherAvatar,omitempty"`
}

type UpdateTeacherRequest struct {
	TeacherName   *string `json:"teacherName,omitempty" validate:"omitempty,max=100"`
	TeacherIntro  *string `json:"teacherIntro,omitempty"`
	TeacherAvatar *string `json:"teacherAvatar,omitempty"`
}

func (r *UpdateTeacherRequest) Apply(m *model.Teacher) {
	if r.TeacherName != nil {
		m.TeacherName = *r.TeacherName
	}
	if r.TeacherIntro != nil {
		m.TeacherIntro = r.TeacherIntro
	}
	if r.TeacherAvatar != nil {
		m.TeacherAvatar = r.TeacherAvatar
	}
}

type TeacherResponse struct {
	TeacherID     uuid.UUID `json:"teacher_id"`
	TeacherName   string    `json:"teacher_name"`
	TeacherIntro  *string   `json:"teacher_intro,omitempty"`
	TeacherAvatar *string   `json:"teacher_avatar,omitempty"`
	CreatedAt     time.Time `json:"teacher_created_at"`
}

func FromModel(m *model.Teacher) *TeacherResponse {
	return &TeacherResponse{
		TeacherID:     m.TeacherID,
		TeacherName:   m.TeacherName,
		TeacherIntro:  m.TeacherIntro,
		TeacherAvatar: m.TeacherAvatar,
		CreatedAt:     m.CreatedAt,
	}
}
