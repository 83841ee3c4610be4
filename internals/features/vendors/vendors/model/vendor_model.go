package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Status ===================== */
// 0: pending (menunggu review), 1: active, 2: suspended (stop diberhentikan)

const (
	VendorStatusPending   = 0
	VendorStatusActive    = 1
	VendorStatusSuspended = 2
)

/* ===================== Model ===================== */

type Vendor struct {
	VendorID uuid.UUID `gorm:"column:vendor_id;type:uuid;default:gen_random_uuid();primaryKey" json:"vendor_id"`

	// Akun login (email)
	VendorAccount  string `gorm:"column:vendor_account;type:varchar(255);uniqueIndex;not null" json:"vendor_account"`
	VendorPassword string `gorm:"column:vendor_password;type:varchar(255)" json:"-"`

	// Identitas brand
	VendorRepresentative string  `gorm:"column:vendor_representative;type:varchar(100);not null" json:"vendor_representative"`
	VendorMobile         string  `gorm:"column:vendor_mobile;type:varchar(30);not null" json:"vendor_mobile"`
	VendorBrandName      string  `gorm:"column:vendor_brand_name;type:varchar(100);not null" json:"vendor_brand_name"`
	VendorAvatar         *string `gorm:"column:vendor_avatar" json:"vendor_avatar,omitempty"`
	VendorBannerImage    *string `gorm:"column:vendor_banner_image" json:"vendor_banner_image,omitempty"`
	VendorIntro          *string `gorm:"column:vendor_intro" json:"vendor_intro,omitempty"`
	VendorNotice         *string `gorm:"column:vendor_notice" json:"vendor_notice,omitempty"`
	VendorAddress        *string `gorm:"column:vendor_address" json:"vendor_address,omitempty"`
	VendorSocialMedias   datatypes.JSONMap `gorm:"column:vendor_social_medias;type:jsonb" json:"vendor_social_medias,omitempty"`

	// Status onboarding (0 pending / 1 active / 2 suspended)
	VendorStatus int `gorm:"column:vendor_status;not null;default:0" json:"vendor_status"`

	// Info bank untuk payout
	VendorBankName        *string `gorm:"column:vendor_bank_name" json:"vendor_bank_name,omitempty"`
	VendorBankCode        *string `gorm:"column:vendor_bank_code" json:"vendor_bank_code,omitempty"`
	VendorBankBranch      *string `gorm:"column:vendor_bank_branch" json:"vendor_bank_branch,omitempty"`
	VendorBankAccountName *string `gorm:"column:vendor_bank_account_name" json:"vendor_bank_account_name,omitempty"`
	VendorBankAccount     *string `gorm:"column:vendor_bank_account" json:"vendor_bank_account,omitempty"`

	// Data pengajuan review (diisi saat apply)
	VendorReviewLinks  datatypes.JSON `gorm:"column:vendor_review_links;type:jsonb" json:"vendor_review_links,omitempty"`
	VendorReviewBrief  *string        `gorm:"column:vendor_review_brief" json:"vendor_review_brief,omitempty"`
	VendorReviewImages datatypes.JSON `gorm:"column:vendor_review_images;type:jsonb" json:"vendor_review_images,omitempty"`

	VendorLoginAt *time.Time `gorm:"column:vendor_login_at" json:"vendor_login_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:vendor_created_at;autoCreateTime" json:"vendor_created_at"`
	UpdatedAt time.Time      `gorm:"column:vendor_updated_at;autoUpdateTime" json:"vendor_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:vendor_deleted_at;index" json:"vendor_deleted_at,omitempty"`
}

func (Vendor) TableName() string { return "vendors" }

/* ===================== Helpers ===================== */

func (v *Vendor) IsActive() bool {
	return v.VendorStatus == VendorStatusActive
}
