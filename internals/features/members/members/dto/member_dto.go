package dto

import (
	"time"

	"github.com/google/uuid"

	"ciaocraft_backend/internals/features/members/members/model"
)

/* ===================== Requests ===================== */

type RegisterMemberRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
}

type MemberLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateMemberRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Avatar *string `json:"avatar,omitempty"`
	Mobile *string `json:"mobile,omitempty" validate:"omitempty,max=30"`
}

func (r *UpdateMemberRequest) Apply(m *model.Member) {
	if r.Name != nil {
		m.MemberName = *r.Name
	}
	if r.Avatar != nil {
		m.MemberAvatar = r.Avatar
	}
	if r.Mobile != nil {
		m.MemberMobile = r.Mobile
	}
}

/* ===================== Responses ===================== */

type MemberResponse struct {
	MemberID     uuid.UUID  `json:"member_id"`
	MemberName   string     `json:"member_name"`
	MemberEmail  string     `json:"member_email"`
	MemberAvatar *string    `json:"member_avatar,omitempty"`
	MemberMobile *string    `json:"member_mobile,omitempty"`
	MemberLoginAt *time.Time `json:"member_login_at,omitempty"`
	CreatedAt    time.Time  `json:"member_created_at"`
}

func FromModel(m *model.Member) *MemberResponse {
	return &MemberResponse{
		MemberID:      m.MemberID,
		MemberName:    m.MemberName,
		MemberEmail:   m.MemberEmail,
		MemberAvatar:  m.MemberAvatar,
		MemberMobile:  m.MemberMobile,
		MemberLoginAt: m.MemberLoginAt,
		CreatedAt:     m.CreatedAt,
	}
}
