package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ===================== Status ===================== */
// 0: unlisted (下架), 1: listed (上架), 2: deleted (soft delete — baris tidak pernah dihapus fisik)

const (
	CourseStatusUnlisted = 0
	CourseStatusListed   = 1
	CourseStatusDeleted  = 2
)

/* ===================== Model ===================== */

type Course struct {
	CourseID uuid.UUID `gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_id"`

	CourseVendorID  uuid.UUID `gorm:"column:course_vendor_id;type:uuid;not null;index" json:"course_vendor_id"`
	CourseTeacherID uuid.UUID `gorm:"column:course_teacher_id;type:uuid;not null" json:"course_teacher_id"`

	CourseName  string `gorm:"column:course_name;type:varchar(200);not null" json:"course_name"`
	CoursePrice int    `gorm:"column:course_price;not null;check:course_price >= 0" json:"course_price"`

	// 0 unlisted / 1 listed / 2 deleted
	CourseStatus int `gorm:"column:course_status;not null;default:0" json:"course_status"`

	CourseType     datatypes.JSON `gorm:"column:course_type;type:jsonb" json:"course_type,omitempty"` // array kategori
	CourseLocation *string        `gorm:"column:course_location" json:"course_location,omitempty"`    // kota (untuk filter)
	CourseAddress  *string        `gorm:"column:course_address" json:"course_address,omitempty"`      // alamat lengkap
	CourseSummary  *string        `gorm:"column:course_summary" json:"course_summary,omitempty"`
	CourseContent  *string        `gorm:"column:course_content" json:"course_content,omitempty"` // konten editor
	CourseRemark   *string        `gorm:"column:course_remark" json:"course_remark,omitempty"`
	CourseImages   datatypes.JSON `gorm:"column:course_images;type:jsonb" json:"course_images,omitempty"`

	CourseItems []CourseItem `gorm:"foreignKey:CourseItemCourseID;references:CourseID" json:"course_items,omitempty"`

	CreatedAt time.Time `gorm:"column:course_created_at;autoCreateTime" json:"course_created_at"`
	UpdatedAt time.Time `gorm:"column:course_updated_at;autoUpdateTime" json:"course_updated_at"`
}

func (Course) TableName() string { return "courses" }

func (m *Course) IsListed() bool { return m.CourseStatus == CourseStatusListed }
