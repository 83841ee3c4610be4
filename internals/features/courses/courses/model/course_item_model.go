package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Status ===================== */
// sama dengan course: 0 unlisted / 1 listed / 2 deleted

const (
	CourseItemStatusUnlisted = 0
	CourseItemStatusListed   = 1
	CourseItemStatusDeleted  = 2
)

/* ===================== Model ===================== */

// CourseItem = satu slot waktu yang bisa di-booking, bawa kapasitas sendiri.
// Invariant: course_item_capacity tidak boleh negatif (dijaga CHECK di DB +
// conditional update di capacity ledger).
type CourseItem struct {
	CourseItemID uuid.UUID `gorm:"column:course_item_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_item_id"`

	CourseItemCourseID uuid.UUID `gorm:"column:course_item_course_id;type:uuid;not null;index" json:"course_item_course_id"`

	CourseItemName     string `gorm:"column:course_item_name;type:varchar(200);not null" json:"course_item_name"`
	CourseItemCapacity int    `gorm:"column:course_item_capacity;not null;default:0;check:course_item_capacity >= 0" json:"course_item_capacity"`

	// Window waktu slot: bentuk kanonik start/end
	// (skema lama sempat pakai course_date tunggal; sudah distandarkan)
	CourseItemStartTime time.Time `gorm:"column:course_item_start_time;not null" json:"course_item_start_time"`
	CourseItemEndTime   time.Time `gorm:"column:course_item_end_time;not null" json:"course_item_end_time"`

	CourseItemStatus int `gorm:"column:course_item_status;not null;default:1" json:"course_item_status"`

	CreatedAt time.Time `gorm:"column:course_item_created_at;autoCreateTime" json:"course_item_created_at"`
	UpdatedAt time.Time `gorm:"column:course_item_updated_at;autoUpdateTime" json:"course_item_updated_at"`
}

func (CourseItem) TableName() string { return "course_items" }

func (m *CourseItem) IsListed() bool { return m.CourseItemStatus == CourseItemStatusListed }
