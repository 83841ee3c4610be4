// file: internals/features/platform/platform/model/platform_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Platform: info situs (satu baris per nama platform, dipakai footer & halaman kontak)
type Platform struct {
	PlatformID uuid.UUID `gorm:"column:platform_id;type:uuid;default:gen_random_uuid();primaryKey" json:"platform_id"`

	PlatformNameTW string `gorm:"column:platform_name_tw;type:varchar(100);not null" json:"platform_name_tw"`
	PlatformNameEN string `gorm:"column:platform_name_en;type:varchar(100);uniqueIndex;not null" json:"platform_name_en"`

	PlatformEmail  string  `gorm:"column:platform_email;type:varchar(255);not null" json:"platform_email"`
	PlatformMobile *string `gorm:"column:platform_mobile;type:varchar(30)" json:"platform_mobile,omitempty"`

	PlatformInfo *string `gorm:"column:platform_info;type:text" json:"platform_info,omitempty"`

	CreatedAt time.Time `gorm:"column:platform_created_at;autoCreateTime" json:"platform_created_at"`
	UpdatedAt time.Time `gorm:"column:platform_updated_at;autoUpdateTime" json:"platform_updated_at"`
}

func (Platform) TableName() string {
	return "platforms"
}
