package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"ciaocraft_backend/internals/features/vendors/vendors/model"
)

/* =========================================================
   REQUEST DTOs
   JSON tags = camelCase (kontrak lama frontend)
========================================================= */

// ApplyVendorRequest: pengajuan vendor baru (Front, publik)
type ApplyVendorRequest struct {
	Representative string   `json:"representative" validate:"required,max=100"`
	Mobile         string   `json:"mobile" validate:"required,max=30"`
	BrandName      string   `json:"brandName" validate:"required,max=100"`
	Account        string   `json:"account" validate:"required,email,max=255"`
	ReviewLinks    []string `json:"reviewLinks,omitempty"`
	ReviewBrief    *string  `json:"reviewBrief,omitempty"`
	ReviewImages   []string `json:"reviewImages,omitempty"`
}

func (r *ApplyVendorRequest) Trim() {
	r.Representative = strings.TrimSpace(r.Representative)
	r.Mobile = strings.TrimSpace(r.Mobile)
	r.BrandName = strings.TrimSpace(r.BrandName)
	r.Account = strings.TrimSpace(r.Account)
}

// VendorLoginRequest (Back)
type VendorLoginRequest struct {
	Account  string `json:"account" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateVendorRequest: edit profil + info bank (Back)
type UpdateVendorRequest struct {
	Mobile          *string        `json:"mobile,omitempty"`
	BrandName       *string        `json:"brandName,omitempty"`
	Avatar          *string        `json:"avatar,omitempty"`
	BannerImage     *string        `json:"bannerImage,omitempty"`
	Intro           *string        `json:"intro,omitempty"`
	Notice          *string        `json:"notice,omitempty"`
	Address         *string        `json:"address,omitempty"`
	SocialMedias    map[string]any `json:"socialMedias,omitempty"`
	BankName        *string        `json:"bankName,omitempty"`
	BankCode        *string        `json:"bankCode,omitempty"`
	BankBranch      *string        `json:"bankBranch,omitempty"`
	BankAccountName *string        `json:"bankAccountName,omitempty"`
	BankAccount     *string        `json:"bankAccount,omitempty"`
}

// Apply menerapkan perubahan ke model; return true kalau ada field berubah.
func (r *UpdateVendorRequest) Apply(m *model.Vendor) bool {
	changed := false
	setStr := func(dst **string, src *string) {
		if src == nil {
			return
		}
		v := strings.TrimSpace(*src)
		if *dst == nil || **dst != v {
			*dst = &v
			changed = true
		}
	}
	if r.Mobile != nil {
		v := strings.TrimSpace(*r.Mobile)
		if v != "" && v != m.VendorMobile {
			m.VendorMobile = v
			changed = true
		}
	}
	if r.BrandName != nil {
		v := strings.TrimSpace(*r.BrandName)
		if v != "" && v != m.VendorBrandName {
			m.VendorBrandName = v
			changed = true
		}
	}
	setStr(&m.VendorAvatar, r.Avatar)
	setStr(&m.VendorBannerImage, r.BannerImage)
	setStr(&m.VendorIntro, r.Intro)
	setStr(&m.VendorNotice, r.Notice)
	setStr(&m.VendorAddress, r.Address)
	setStr(&m.VendorBankName, r.BankName)
	setStr(&m.VendorBankCode, r.BankCode)
	setStr(&m.VendorBankBranch, r.BankBranch)
	setStr(&m.VendorBankAccountName, r.BankAccountName)
	setStr(&m.VendorBankAccount, r.BankAccount)
	if r.SocialMedias != nil {
		m.VendorSocialMedias = datatypes.JSONMap(r.SocialMedias)
		changed = true
	}
	return changed
}

// UpdateVendorPasswordRequest (Back)
type UpdateVendorPasswordRequest struct {
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// Validate: password harus alfanumerik campuran huruf+angka, minimal 8 karakter
func (r *UpdateVendorPasswordRequest) Validate() error {
	if err := ValidatePasswordRule(r.Password); err != nil {
		return err
	}
	if r.Password != r.ConfirmPassword {
		return errors.New("password confirmation does not match")
	}
	return nil
}

// ValidatePasswordRule: huruf + angka campur, >= 8, alfanumerik saja.
// (regexp Go tidak support lookahead, jadi dicek manual)
func ValidatePasswordRule(pw string) error {
	if len(pw) < 8 {
		return errors.New("password must mix letters and digits, minimum 8 chars")
	}
	hasLetter, hasDigit := false, false
	for _, ch := range pw {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
			hasLetter = true
		case ch >= '0' && ch <= '9':
			hasDigit = true
		default:
			return errors.New("password must mix letters and digits, minimum 8 chars")
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("password must mix letters and digits, minimum 8 chars")
	}
	return nil
}

// ActivateVendorRequest: platform admin meluluskan review & set password awal (Manage)
type ActivateVendorRequest struct {
	Status   int    `json:"status" validate:"oneof=0 1 2"`
	Password string `json:"password,omitempty"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type VendorResponse struct {
	VendorID             uuid.UUID         `json:"vendor_id"`
	VendorAccount        string            `json:"vendor_account"`
	VendorRepresentative string            `json:"vendor_representative"`
	VendorMobile         string            `json:"vendor_mobile"`
	VendorBrandName      string            `json:"vendor_brand_name"`
	VendorAvatar         *string           `json:"vendor_avatar,omitempty"`
	VendorBannerImage    *string           `json:"vendor_banner_image,omitempty"`
	VendorIntro          *string           `json:"vendor_intro,omitempty"`
	VendorNotice         *string           `json:"vendor_notice,omitempty"`
	VendorAddress        *string           `json:"vendor_address,omitempty"`
	VendorSocialMedias   datatypes.JSONMap `json:"vendor_social_medias,omitempty"`
	VendorStatus         int               `json:"vendor_status"`

	VendorBankName        *string `json:"vendor_bank_name,omitempty"`
	VendorBankCode        *string `json:"vendor_bank_code,omitempty"`
	VendorBankBranch      *string `json:"vendor_bank_branch,omitempty"`
	VendorBankAccountName *string `json:"vendor_bank_account_name,omitempty"`
	VendorBankAccount     *string `json:"vendor_bank_account,omitempty"`

	VendorLoginAt   *time.Time `json:"vendor_login_at,omitempty"`
	VendorCreatedAt time.Time  `json:"vendor_created_at"`
}

func FromModel(m *model.Vendor) *VendorResponse {
	return &VendorResponse{
		VendorID:             m.VendorID,
		VendorAccount:        m.VendorAccount,
		VendorRepresentative: m.VendorRepresentative,
		VendorMobile:         m.VendorMobile,
		VendorBrandName:      m.VendorBrandName,
		VendorAvatar:         m.VendorAvatar,
		VendorBannerImage:    m.VendorBannerImage,
		VendorIntro:          m.VendorIntro,
		VendorNotice:         m.VendorNotice,
		VendorAddress:        m.VendorAddress,
		VendorSocialMedias:   m.VendorSocialMedias,
		VendorStatus:         m.VendorStatus,

		VendorBankName:        m.VendorBankName,
		VendorBankCode:        m.VendorBankCode,
		VendorBankBranch:      m.VendorBankBranch,
		VendorBankAccountName: m.VendorBankAccountName,
		VendorBankAccount:     m.VendorBankAccount,

		VendorLoginAt:   m.VendorLoginAt,
		VendorCreatedAt: m.CreatedAt,
	}
}
