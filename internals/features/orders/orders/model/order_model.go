package model

import (
	"time"

	"github.com/google/uuid"
)

/* ===================== Paid status ===================== */
/* Posisi order di state machine:
   0: 待付款 pending payment
   1: 已付款 paid (member sudah kirim 5 digit terakhir)
   2: 已確認收到款 confirmed (vendor konfirmasi terima dana)
   3: 已完課 completed (kelas selesai)
   4: 訂單取消(已過期) canceled - expired
   5: 訂單取消(不需退款) canceled - no refund
   6: 訂單取消(待退款) canceled - pending refund
   7: 已退款 refunded
*/

const (
	OrderStatusPendingPayment        = 0
	OrderStatusPaid                  = 1
	OrderStatusConfirmed             = 2
	OrderStatusCompleted             = 3
	OrderStatusCanceledExpired       = 4
	OrderStatusCanceledNoRefund      = 5
	OrderStatusCanceledPendingRefund = 6
	OrderStatusRefunded              = 7
)

/* ===================== Payment type ===================== */

const (
	PaymentTypeATM     = 1
	PaymentTypeGateway = 2 // belum dipakai, disimpan untuk kompatibilitas data lama
)

/* ===================== Model ===================== */

// Order tidak pernah dihapus, hanya berpindah status.
// Field nama vendor/course/item adalah snapshot saat order dibuat,
// supaya edit katalog belakangan tidak mengubah order lama.
type Order struct {
	OrderID uuid.UUID `gorm:"column:order_id;type:uuid;default:gen_random_uuid();primaryKey" json:"order_id"`

	// Referensi (immutable setelah create)
	OrderMemberID     uuid.UUID `gorm:"column:order_member_id;type:uuid;not null;index" json:"order_member_id"`
	OrderVendorID     uuid.UUID `gorm:"column:order_vendor_id;type:uuid;not null;index" json:"order_vendor_id"`
	OrderCourseID     uuid.UUID `gorm:"column:order_course_id;type:uuid;not null" json:"order_course_id"`
	OrderCourseItemID uuid.UUID `gorm:"column:order_course_item_id;type:uuid;not null;index" json:"order_course_item_id"`

	// Snapshot nama (denormalisasi saat create)
	OrderVendorName     string `gorm:"column:order_vendor_name;not null" json:"order_vendor_name"`
	OrderCourseName     string `gorm:"column:order_course_name;not null" json:"order_course_name"`
	OrderCourseItemName string `gorm:"column:order_course_item_name;not null" json:"order_course_item_name"`

	// Jumlah kursi, harga satuan, total (total divalidasi = count * price, bukan derived)
	OrderCount      int `gorm:"column:order_count;not null;check:order_count > 0" json:"order_count"`
	OrderPrice      int `gorm:"column:order_price;not null;check:order_price > 0" json:"order_price"`
	OrderTotalPrice int `gorm:"column:order_total_price;not null;check:order_total_price > 0" json:"order_total_price"`

	// Snapshot window waktu kelas
	OrderCourseStartTime time.Time `gorm:"column:order_course_start_time;not null" json:"order_course_start_time"`
	OrderCourseEndTime   time.Time `gorm:"column:order_course_end_time;not null" json:"order_course_end_time"`

	OrderLocation *string `gorm:"column:order_location" json:"order_location,omitempty"`
	OrderNote     *string `gorm:"column:order_note" json:"order_note,omitempty"`

	OrderPaymentType int `gorm:"column:order_payment_type;not null;default:1" json:"order_payment_type"`
	OrderPaidStatus  int `gorm:"column:order_paid_status;not null;default:0;index" json:"order_paid_status"`

	// 5 digit terakhir rekening pembayaran — satu-satunya field yang boleh
	// diubah member setelah order dibuat
	OrderLastFiveDigits *string `gorm:"column:order_last_five_digits;type:varchar(5)" json:"order_last_five_digits,omitempty"`

	// Timestamp per transisi
	OrderPaidTime    *time.Time `gorm:"column:order_paid_time" json:"order_paid_time,omitempty"`
	OrderConfirmTime *time.Time `gorm:"column:order_confirm_time" json:"order_confirm_time,omitempty"`
	OrderCancelTime  *time.Time `gorm:"column:order_cancel_time" json:"order_cancel_time,omitempty"`
	OrderRefundTime  *time.Time `gorm:"column:order_refund_time" json:"order_refund_time,omitempty"`

	OrderCancelReason *string `gorm:"column:order_cancel_reason" json:"order_cancel_reason,omitempty"`

	CreatedAt time.Time `gorm:"column:order_created_at;autoCreateTime;index" json:"order_created_at"`
	UpdatedAt time.Time `gorm:"column:order_updated_at;autoUpdateTime" json:"order_updated_at"`
}

func (Order) TableName() string { return "orders" }

/* ===================== Helpers ===================== */

func (o *Order) IsCanceled() bool {
	switch o.OrderPaidStatus {
	case OrderStatusCanceledExpired, OrderStatusCanceledNoRefund, OrderStatusCanceledPendingRefund, OrderStatusRefunded:
		return true
	default:
		return false
	}
}

func (o *Order) IsTerminal() bool {
	switch o.OrderPaidStatus {
	case OrderStatusCompleted, OrderStatusCanceledExpired, OrderStatusCanceledNoRefund, OrderStatusRefunded:
		return true
	default:
		return false
	}
}
