package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Teacher struct {
	TeacherID uuid.UUID `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`

	TeacherVendorID uuid.UUID `gorm:"column:teacher_vendor_id;type:uuid;not null;index" json:"teacher_vendor_id"`

	TeacherName   string  `gorm:"column:teacher_name;type:varchar(100);not null" json:"teacher_name"`
	TeacherIntro  *string `gorm:"column:teacher_intro" json:"teacher_intro,omitempty"`
	TeacherAvatar *string `gorm:"column:teacher_avatar" json:"teacher_avatar,omitempty"`

	CreatedAt time.Time      `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	UpdatedAt time.Time      `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"teacher_deleted_at,omitempty"`
}

func (Teacher) TableName() string { return "teachers" }
