package dto

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"ciaocraft_backend/internals/features/courses/courses/model"
)

/* =========================================================
   REQUEST DTOs (Back — vendor)
========================================================= */

type CreateCourseItemRequest struct {
	CourseItemName string `json:"itemName" validate:"required,max=200"`
	// pointer supaya kapasitas 0 (slot penuh/ditutup) tetap lolos "required"
	CourseItemCapacity *int      `json:"capacity" validate:"required,gte=0"`
	CourseItemStart    time.Time `json:"startTime" validate:"required"`
	CourseItemEnd      time.Time `json:"endTime" validate:"required"`
	CourseItemStatus   *int      `json:"status,omitempty" validate:"omitempty,oneof=0 1"`
}

func (r *CreateCourseItemRequest) Validate() error {
	if !r.CourseItemEnd.After(r.CourseItemStart) {
		return errors.New("endTime must be after startTime")
	}
	return nil
}

type CreateCourseRequest struct {
	CourseTeacherID uuid.UUID `json:"teacherId" validate:"required"`
	CourseName      string    `json:"courseName" validate:"required,max=200"`
	CoursePrice     int       `json:"coursePrice" validate:"required,gt=0"`
	CourseType      []string  `json:"courseType,omitempty"`
	CourseLocation  *string   `json:"courseLocation,omitempty"`
	CourseAddress   *string   `json:"courseAddress,omitempty"`
	CourseSummary   *string   `json:"courseSummary,omitempty"`
	CourseContent   *string   `json:"courseContent,omitempty"`
	CourseRemark    *string   `json:"courseRemark,omitempty"`
	CourseImages    []string  `json:"courseImages,omitempty"`
	CourseStatus    *int      `json:"courseStatus,omitempty" validate:"omitempty,oneof=0 1"`

	CourseItems []CreateCourseItemRequest `json:"courseItems,omitempty" validate:"dive"`
}

func (r *CreateCourseRequest) ToModel(vendorID uuid.UUID) *model.Course {
	m := &model.Course{
		CourseVendorID:  vendorID,
		CourseTeacherID: r.CourseTeacherID,
		CourseName:      r.CourseName,
		CoursePrice:     r.CoursePrice,
		CourseLocation:  r.CourseLocation,
		CourseAddress:   r.CourseAddress,
		CourseSummary:   r.CourseSummary,
		CourseContent:   r.CourseContent,
		CourseRemark:    r.CourseRemark,
		CourseStatus:    model.CourseStatusUnlisted,
	}
	if r.CourseStatus != nil {
		m.CourseStatus = *r.CourseStatus
	}
	if len(r.CourseType) > 0 {
		m.CourseType = toJSON(r.CourseType)
	}
	if len(r.CourseImages) > 0 {
		m.CourseImages = toJSON(r.CourseImages)
	}
	for _, it := range r.CourseItems {
		item := model.CourseItem{
			CourseItemName:     it.CourseItemName,
			CourseItemCapacity: *it.CourseItemCapacity,
			CourseItemStartTime: it.CourseItemStart,
			CourseItemEndTime:   it.CourseItemEnd,
			CourseItemStatus:   model.CourseItemStatusListed,
		}
		if it.CourseItemStatus != nil {
			item.CourseItemStatus = *it.CourseItemStatus
		}
		m.CourseItems = append(m.CourseItems, item)
	}
	return m
}

type UpdateCourseRequest struct {
	CourseTeacherID *uuid.UUID `json:"teacherId,omitempty"`
	CourseName      *string    `json:"courseName,omitempty"`
	CoursePrice     *int       `json:"coursePrice,omitempty" validate:"omitempty,gt=0"`
	CourseType      []string   `json:"courseType,omitempty"`
	CourseLocation  *string    `json:"courseLocation,omitempty"`
	CourseAddress   *string    `json:"courseAddress,omitempty"`
	CourseSummary   *string    `json:"courseSummary,omitempty"`
	CourseContent   *string    `json:"courseContent,omitempty"`
	CourseRemark    *string    `json:"courseRemark,omitempty"`
	CourseImages    []string   `json:"courseImages,omitempty"`
	// 0 unlisted / 1 listed (2 = deleted hanya lewat endpoint delete)
	CourseStatus *int `json:"courseStatus,omitempty" validate:"omitempty,oneof=0 1"`
}

func (r *UpdateCourseRequest) Apply(m *model.Course) {
	if r.CourseTeacherID != nil {
		m.CourseTeacherID = *r.CourseTeacherID
	}
	if r.CourseName != nil {
		m.CourseName = *r.CourseName
	}
	if r.CoursePrice != nil {
		m.CoursePrice = *r.CoursePrice
	}
	if r.CourseType != nil {
		m.CourseType = toJSON(r.CourseType)
	}
	if r.CourseLocation != nil {
		m.CourseLocation = r.CourseLocation
	}
	if r.CourseAddress != nil {
		m.CourseAddress = r.CourseAddress
	}
	if r.CourseSummary != nil {
		m.CourseSummary = r.CourseSummary
	}
	if r.CourseContent != nil {
		m.CourseContent = r.CourseContent
	}
	if r.CourseRemark != nil {
		m.CourseRemark = r.CourseRemark
	}
	if r.CourseImages != nil {
		m.CourseImages = toJSON(r.CourseImages)
	}
	if r.CourseStatus != nil {
		m.CourseStatus = *r.CourseStatus
	}
}

type UpdateCourseItemRequest struct {
	CourseItemName     *string    `json:"itemName,omitempty"`
	CourseItemCapacity *int       `json:"capacity,omitempty" validate:"omitempty,gte=0"`
	CourseItemStart    *time.Time `json:"startTime,omitempty"`
	CourseItemEnd      *time.Time `json:"endTime,omitempty"`
	CourseItemStatus   *int       `json:"status,omitempty" validate:"omitempty,oneof=0 1"`
}

func (r *UpdateCourseItemRequest) Apply(m *model.CourseItem) error {
	if r.CourseItemName != nil {
		m.CourseItemName = *r.CourseItemName
	}
	if r.CourseItemCapacity != nil {
		m.CourseItemCapacity = *r.CourseItemCapacity
	}
	if r.CourseItemStart != nil {
		m.CourseItemStartTime = *r.CourseItemStart
	}
	if r.CourseItemEnd != nil {
		m.CourseItemEndTime = *r.CourseItemEnd
	}
	if !m.CourseItemEndTime.After(m.CourseItemStartTime) {
		return errors.New("endTime must be after startTime")
	}
	if r.CourseItemStatus != nil {
		m.CourseItemStatus = *r.CourseItemStatus
	}
	return nil
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type CourseItemResponse struct {
	CourseItemID       uuid.UUID `json:"course_item_id"`
	CourseItemName     string    `json:"course_item_name"`
	CourseItemCapacity int       `json:"course_item_capacity"`
	CourseItemStart    time.Time `json:"course_item_start_time"`
	CourseItemEnd      time.Time `json:"course_item_end_time"`
	CourseItemStatus   int       `json:"course_item_status"`
}

type CourseResponse struct {
	CourseID        uuid.UUID      `json:"course_id"`
	CourseVendorID  uuid.UUID      `json:"course_vendor_id"`
	CourseTeacherID uuid.UUID      `json:"course_teacher_id"`
	CourseName      string         `json:"course_name"`
	CoursePrice     int            `json:"course_price"`
	CourseStatus    int            `json:"course_status"`
	CourseType      datatypes.JSON `json:"course_type,omitempty"`
	CourseLocation  *string        `json:"course_location,omitempty"`
	CourseAddress   *string        `json:"course_address,omitempty"`
	CourseSummary   *string        `json:"course_summary,omitempty"`
	CourseContent   *string        `json:"course_content,omitempty"`
	CourseRemark    *string        `json:"course_remark,omitempty"`
	CourseImages    datatypes.JSON `json:"course_images,omitempty"`
	CourseCreatedAt time.Time      `json:"course_created_at"`

	CourseItems []CourseItemResponse `json:"course_items,omitempty"`
}

func ItemFromModel(m *model.CourseItem) CourseItemResponse {
	return CourseItemResponse{
		CourseItemID:       m.CourseItemID,
		CourseItemName:     m.CourseItemName,
		CourseItemCapacity: m.CourseItemCapacity,
		CourseItemStart:    m.CourseItemStartTime,
		CourseItemEnd:      m.CourseItemEndTime,
		CourseItemStatus:   m.CourseItemStatus,
	}
}

func FromModel(m *model.Course) *CourseResponse {
	resp := &CourseResponse{
		CourseID:        m.CourseID,
		CourseVendorID:  m.CourseVendorID,
		CourseTeacherID: m.CourseTeacherID,
		CourseName:      m.CourseName,
		CoursePrice:     m.CoursePrice,
		CourseStatus:    m.CourseStatus,
		CourseType:      m.CourseType,
		CourseLocation:  m.CourseLocation,
		CourseAddress:   m.CourseAddress,
		CourseSummary:   m.CourseSummary,
		CourseContent:   m.CourseContent,
		CourseRemark:    m.CourseRemark,
		CourseImages:    m.CourseImages,
		CourseCreatedAt: m.CreatedAt,
	}
	for i := range m.CourseItems {
		resp.CourseItems = append(resp.CourseItems, ItemFromModel(&m.CourseItems[i]))
	}
	return resp
}

func toJSON(v any) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}
