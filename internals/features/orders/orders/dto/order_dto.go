package dto

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"ciaocraft_backend/internals/features/orders/orders/model"
)

/* =========================================================
   REQUEST DTOs (Front — member)
========================================================= */

// CreateOrderRequest: bikin order baru.
// startTime/endTime dikirim string supaya format salah jadi ValidationError,
// bukan parse error JSON.
type CreateOrderRequest struct {
	VendorID     uuid.UUID `json:"vendorId" validate:"required"`
	CourseID     uuid.UUID `json:"courseId" validate:"required"`
	CourseItemID uuid.UUID `json:"courseItemId" validate:"required"`

	Count      int `json:"count"`
	Price      int `json:"price"`
	TotalPrice int `json:"totalPrice"`

	StartTime string `json:"startTime" validate:"required"`
	EndTime   string `json:"endTime" validate:"required"`

	Location *string `json:"location,omitempty"`
	Note     *string `json:"note,omitempty"`
}

// Validate aturan bisnis: count/price/totalPrice integer positif,
// totalPrice == count*price, window waktu parseable & urut.
func (r *CreateOrderRequest) Validate() (start, end time.Time, err error) {
	if r.Count <= 0 {
		return start, end, errors.New("count must be a positive integer")
	}
	if r.Price <= 0 {
		return start, end, errors.New("price must be a positive integer")
	}
	if r.TotalPrice <= 0 {
		return start, end, errors.New("totalPrice must be a positive integer")
	}
	if r.TotalPrice != r.Count*r.Price {
		return start, end, errors.New("totalPrice must equal count * price")
	}

	start, err = parseTime(r.StartTime)
	if err != nil {
		return start, end, errors.New("startTime format invalid")
	}
	end, err = parseTime(r.EndTime)
	if err != nil {
		return start, end, errors.New("endTime format invalid")
	}
	if !end.After(start) {
		return start, end, errors.New("endTime must be after startTime")
	}
	return start, end, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	// fallback format tanpa zona (kontrak lama frontend)
	return time.Parse("2006-01-02 15:04:05", s)
}

// UpdateOrderRequest: member hanya boleh set 5 digit terakhir (tepat 5 karakter)
type UpdateOrderRequest struct {
	LastFiveDigits string `json:"lastFiveDigits" validate:"required,len=5"`
}

/* =========================================================
   REQUEST DTOs (Back — vendor)
========================================================= */

// UpdateAdminOrderRequest: vendor update status order.
// 2 = konfirmasi terima dana, 5/6 = cancel (wajib cancelReason), 7 = refunded.
type UpdateAdminOrderRequest struct {
	PaidStatus   int     `json:"paidStatus" validate:"oneof=2 5 6 7"`
	CancelReason *string `json:"cancelReason,omitempty"`
}

// sort key untuk listing (member & admin)
const SortCreatedAtAsc = "CREATED_AT_ASC"

// ParseStatusFilter membaca nilai ?paidStatus= (string kosong = tanpa filter)
func ParseStatusFilter(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New("paidStatus must be an integer")
	}
	return &v, nil
}

// ListAdminOrdersQuery: filter listing order vendor
type ListAdminOrdersQuery struct {
	PaidStatus *int       // ?paidStatus=
	StartDate  *time.Time // ?startDate=2024-05-25 (created_at range)
	EndDate    *time.Time
	Keyword    string // order id atau nama member
	SortAsc    bool   // ?createdAt=CREATED_AT_ASC
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type OrderResponse struct {
	OrderID uuid.UUID `json:"order_id"`

	OrderMemberID     uuid.UUID `json:"order_member_id"`
	OrderVendorID     uuid.UUID `json:"order_vendor_id"`
	OrderCourseID     uuid.UUID `json:"order_course_id"`
	OrderCourseItemID uuid.UUID `json:"order_course_item_id"`

	OrderVendorName     string `json:"order_vendor_name"`
	OrderCourseName     string `json:"order_course_name"`
	OrderCourseItemName string `json:"order_course_item_name"`

	OrderCount      int `json:"order_count"`
	OrderPrice      int `json:"order_price"`
	OrderTotalPrice int `json:"order_total_price"`

	OrderCourseStartTime time.Time `json:"order_course_start_time"`
	OrderCourseEndTime   time.Time `json:"order_course_end_time"`

	OrderLocation *string `json:"order_location,omitempty"`
	OrderNote     *string `json:"order_note,omitempty"`

	OrderPaymentType int `json:"order_payment_type"`
	OrderPaidStatus  int `json:"order_paid_status"`

	OrderLastFiveDigits *string `json:"order_last_five_digits,omitempty"`

	OrderPaidTime    *time.Time `json:"order_paid_time,omitempty"`
	OrderConfirmTime *time.Time `json:"order_confirm_time,omitempty"`
	OrderCancelTime  *time.Time `json:"order_cancel_time,omitempty"`
	OrderRefundTime  *time.Time `json:"order_refund_time,omitempty"`

	OrderCancelReason *string `json:"order_cancel_reason,omitempty"`

	OrderCreatedAt time.Time `json:"order_created_at"`

	// terisi di listing admin (join ke members)
	MemberName string `json:"member_name,omitempty"`
}

func FromModel(m *model.Order) *OrderResponse {
	return &OrderResponse{
		OrderID:           m.OrderID,
		OrderMemberID:     m.OrderMemberID,
		OrderVendorID:     m.OrderVendorID,
		OrderCourseID:     m.OrderCourseID,
		OrderCourseItemID: m.OrderCourseItemID,

		OrderVendorName:     m.OrderVendorName,
		OrderCourseName:     m.OrderCourseName,
		OrderCourseItemName: m.OrderCourseItemName,

		OrderCount:      m.OrderCount,
		OrderPrice:      m.OrderPrice,
		OrderTotalPrice: m.OrderTotalPrice,

		OrderCourseStartTime: m.OrderCourseStartTime,
		OrderCourseEndTime:   m.OrderCourseEndTime,

		OrderLocation: m.OrderLocation,
		OrderNote:     m.OrderNote,

		OrderPaymentType: m.OrderPaymentType,
		OrderPaidStatus:  m.OrderPaidStatus,

		OrderLastFiveDigits: m.OrderLastFiveDigits,

		OrderPaidTime:    m.OrderPaidTime,
		OrderConfirmTime: m.OrderConfirmTime,
		OrderCancelTime:  m.OrderCancelTime,
		OrderRefundTime:  m.OrderRefundTime,

		OrderCancelReason: m.OrderCancelReason,
		OrderCreatedAt:    m.CreatedAt,
	}
}
