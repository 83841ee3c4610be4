package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Member struct {
	MemberID uuid.UUID `gorm:"column:member_id;type:uuid;default:gen_random_uuid();primaryKey" json:"member_id"`

	MemberName     string  `gorm:"column:member_name;type:varchar(100);not null" json:"member_name"`
	MemberEmail    string  `gorm:"column:member_email;type:varchar(255);uniqueIndex;not null" json:"member_email"`
	MemberPassword string  `gorm:"column:member_password;type:varchar(255);not null" json:"-"`
	MemberAvatar   *string `gorm:"column:member_avatar" json:"member_avatar,omitempty"`
	MemberMobile   *string `gorm:"column:member_mobile;type:varchar(30)" json:"member_mobile,omitempty"`

	MemberLoginAt *time.Time `gorm:"column:member_login_at" json:"member_login_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	UpdatedAt time.Time      `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:member_deleted_at;index" json:"member_deleted_at,omitempty"`
}

func (Member) TableName() string { return "members" }
