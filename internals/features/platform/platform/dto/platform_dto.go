// file: internals/features/platform/platform/dto/platform_dto.go
package dto

import (
	"errors"
	"strings"

	"ciaocraft_backend/internals/features/platform/platform/model"
)

type CreatePlatformRequest struct {
	PlatformNameTW string  `json:"platformNameTw" validate:"required,max=100"`
	PlatformNameEN string  `json:"platformNameEn" validate:"required,max=100"`
	PlatformEmail  string  `json:"platformEmail" validate:"required,email"`
	PlatformMobile *string `json:"platformMobile,omitempty"`
	PlatformInfo   *string `json:"platformInfo,omitempty"`
}

func (r *CreatePlatformRequest) Trim() {
	r.PlatformNameTW = strings.TrimSpace(r.PlatformNameTW)
	r.PlatformNameEN = strings.TrimSpace(r.PlatformNameEN)
	r.PlatformEmail = strings.TrimSpace(r.PlatformEmail)
}

// nama EN dipakai di path URL, jadi wajib ascii huruf/angka/dash
func (r *CreatePlatformRequest) Validate() error {
	for _, ch := range r.PlatformNameEN {
		ok := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') || ch == '-'
		if !ok {
			return errors.New("platformNameEn must contain only letters, digits, or dashes")
		}
	}
	return nil
}

func (r *CreatePlatformRequest) ToModel() *model.Platform {
	return &model.Platform{
		PlatformNameTW: r.PlatformNameTW,
		PlatformNameEN: r.PlatformNameEN,
		PlatformEmail:  r.PlatformEmail,
		PlatformMobile: r.PlatformMobile,
		PlatformInfo:   r.PlatformInfo,
	}
}
