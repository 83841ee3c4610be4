package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validCreateReq() CreateOrderRequest {
	return CreateOrderRequest{
		VendorID:     uuid.New(),
		CourseID:     uuid.New(),
		CourseItemID: uuid.New(),
		Count:        2,
		Price:        500,
		TotalPrice:   1000,
		StartTime:    "2025-09-01 10:00:00",
		EndTime:      "2025-09-01 12:00:00",
	}
}

func Test_CreateOrderRequest_Valid(t *testing.T) {
	req := validCreateReq()

	assert.NoError(t, validator.New().Struct(&req))

	start, end, err := req.Validate()
	assert.NoError(t, err)
	assert.True(t, end.After(start))
}

func Test_CreateOrderRequest_TotalPriceMismatch(t *testing.T) {
	req := validCreateReq()
	req.TotalPrice = 999

	_, _, err := req.Validate()
	assert.ErrorContains(t, err, "totalPrice")
}

func Test_CreateOrderRequest_NonPositiveNumbers(t *testing.T) {
	req := validCreateReq()
	req.Count = 0
	_, _, err := req.Validate()
	assert.ErrorContains(t, err, "count")

	req = validCreateReq()
	req.Price = -1
	req.TotalPrice = -2
	_, _, err = req.Validate()
	assert.ErrorContains(t, err, "price")
}

func Test_CreateOrderRequest_BadTimeFormat(t *testing.T) {
	req := validCreateReq()
	req.StartTime = "besok pagi"

	_, _, err := req.Validate()
	assert.ErrorContains(t, err, "startTime")
}

func Test_CreateOrderRequest_EndBeforeStart(t *testing.T) {
	req := validCreateReq()
	req.StartTime = "2025-09-01 12:00:00"
	req.EndTime = "2025-09-01 10:00:00"

	_, _, err := req.Validate()
	assert.ErrorContains(t, err, "endTime")
}

func Test_CreateOrderRequest_AcceptsRFC3339(t *testing.T) {
	req := validCreateReq()
	req.StartTime = "2025-09-01T10:00:00+08:00"
	req.EndTime = "2025-09-01T12:00:00+08:00"

	_, _, err := req.Validate()
	assert.NoError(t, err)
}

func Test_UpdateOrderRequest_LastFiveExactlyFive(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Struct(&UpdateOrderRequest{LastFiveDigits: "12345"}))
	assert.Error(t, v.Struct(&UpdateOrderRequest{LastFiveDigits: "1234"}))
	assert.Error(t, v.Struct(&UpdateOrderRequest{LastFiveDigits: "123456"}))
	assert.Error(t, v.Struct(&UpdateOrderRequest{}))
}

func Test_ParseStatusFilter(t *testing.T) {
	// kosong = tanpa filter
	st, err := ParseStatusFilter("")
	assert.NoError(t, err)
	assert.Nil(t, st)

	st, err = ParseStatusFilter(" 4 ")
	assert.NoError(t, err)
	if assert.NotNil(t, st) {
		assert.Equal(t, 4, *st)
	}

	st, err = ParseStatusFilter("paid")
	assert.Error(t, err)
	assert.Nil(t, st)
}

func Test_UpdateAdminOrderRequest_StatusWhitelist(t *testing.T) {
	v := validator.New()

	for _, st := range []int{2, 5, 6, 7} {
		assert.NoError(t, v.Struct(&UpdateAdminOrderRequest{PaidStatus: st}), "status %d", st)
	}
	for _, st := range []int{0, 1, 3, 4, 8} {
		assert.Error(t, v.Struct(&UpdateAdminOrderRequest{PaidStatus: st}), "status %d", st)
	}
}
