package model

import (
	"time"

	"github.com/google/uuid"
)

// Collection = course yang di-favorit member.
// Unik per (member_id, course_id).
type Collection struct {
	CollectionID uuid.UUID `gorm:"column:collection_id;type:uuid;default:gen_random_uuid();primaryKey" json:"collection_id"`

	CollectionMemberID uuid.UUID `gorm:"column:collection_member_id;type:uuid;not null;uniqueIndex:uq_collection_member_course" json:"collection_member_id"`
	CollectionCourseID uuid.UUID `gorm:"column:collection_course_id;type:uuid;not null;uniqueIndex:uq_collection_member_course" json:"collection_course_id"`

	CreatedAt time.Time `gorm:"column:collection_created_at;autoCreateTime" json:"collection_created_at"`
}

func (Collection) TableName() string { return "collections" }
