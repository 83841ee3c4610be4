package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func intPtr(n int) *int { return &n }

func validItemReq() CreateCourseItemRequest {
	return CreateCourseItemRequest{
		CourseItemName:     "週末皮革班",
		CourseItemCapacity: intPtr(8),
		CourseItemStart:    time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
		CourseItemEnd:      time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC),
	}
}

func Test_CreateCourseItemRequest_Capacity(t *testing.T) {
	v := validator.New()

	req := validItemReq()
	assert.NoError(t, v.Struct(&req))

	// kapasitas 0 valid (slot ditutup sementara)
	req = validItemReq()
	req.CourseItemCapacity = intPtr(0)
	assert.NoError(t, v.Struct(&req))

	req = validItemReq()
	req.CourseItemCapacity = intPtr(-1)
	assert.Error(t, v.Struct(&req))

	req = validItemReq()
	req.CourseItemCapacity = nil
	assert.Error(t, v.Struct(&req))
}

func Test_CreateCourseItemRequest_TimeWindow(t *testing.T) {
	req := validItemReq()
	assert.NoError(t, req.Validate())

	req.CourseItemEnd = req.CourseItemStart
	assert.Error(t, req.Validate())
}
