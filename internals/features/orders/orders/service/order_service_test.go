package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	dto "ciaocraft_backend/internals/features/orders/orders/dto"
	model "ciaocraft_backend/internals/features/orders/orders/model"
)

func strPtr(s string) *string { return &s }

func seedOrder(t *testing.T, db *gorm.DB, vendorID, itemID uuid.UUID, status, count int) *model.Order {
	o := &model.Order{
		OrderMemberID:     uuid.New(),
		OrderVendorID:     vendorID,
		OrderCourseID:     uuid.New(),
		OrderCourseItemID: itemID,

		OrderVendorName:     "test vendor",
		OrderCourseName:     "test course",
		OrderCourseItemName: "test slot",

		OrderCount:      count,
		OrderPrice:      500,
		OrderTotalPrice: 500 * count,

		OrderCourseStartTime: time.Now().Add(24 * time.Hour),
		OrderCourseEndTime:   time.Now().Add(26 * time.Hour),

		OrderPaymentType: model.PaymentTypeATM,
		OrderPaidStatus:  status,
	}
	if err := db.Create(o).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return o
}

func reloadOrder(t *testing.T, db *gorm.DB, id uuid.UUID) *model.Order {
	var o model.Order
	if err := db.First(&o, "order_id = ?", id).Error; err != nil {
		t.Fatalf("reload order: %v", err)
	}
	return &o
}

func Test_UpdateStatusByVendor_CancelWithReason(t *testing.T) {
	db := getTestingDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	vendorID := uuid.New()
	// kapasitas 2 = sisa setelah 3 kursi di-reserve order ini
	itemID := seedItem(t, db, 2)
	o := seedOrder(t, db, vendorID, itemID, model.OrderStatusPaid, 3)

	got, err := svc.UpdateStatusByVendor(ctx, vendorID, o.OrderID, &dto.UpdateAdminOrderRequest{
		PaidStatus:   model.OrderStatusCanceledNoRefund,
		CancelReason: strPtr("bahan baku habis"),
	})
	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusCanceledNoRefund, got.OrderPaidStatus)

	re := reloadOrder(t, db, o.OrderID)
	assert.Equal(t, model.OrderStatusCanceledNoRefund, re.OrderPaidStatus)
	assert.NotNil(t, re.OrderCancelTime)
	if assert.NotNil(t, re.OrderCancelReason) {
		assert.Equal(t, "bahan baku habis", *re.OrderCancelReason)
	}
	// cancel mengembalikan kursi
	assert.Equal(t, 5, capacityOf(t, db, itemID))
}

func Test_UpdateStatusByVendor_CancelWithoutReason(t *testing.T) {
	db := getTestingDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	vendorID := uuid.New()
	itemID := seedItem(t, db, 2)
	o := seedOrder(t, db, vendorID, itemID, model.OrderStatusPaid, 3)

	_, err := svc.UpdateStatusByVendor(ctx, vendorID, o.OrderID, &dto.UpdateAdminOrderRequest{
		PaidStatus: model.OrderStatusCanceledNoRefund,
	})
	assert.ErrorIs(t, err, ErrCancelReasonRequired)

	// tidak ada mutasi sama sekali
	re := reloadOrder(t, db, o.OrderID)
	assert.Equal(t, model.OrderStatusPaid, re.OrderPaidStatus)
	assert.Nil(t, re.OrderCancelTime)
	assert.Equal(t, 2, capacityOf(t, db, itemID))
}

func Test_UpdateStatusByVendor_RefundNoSecondRelease(t *testing.T) {
	db := getTestingDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	vendorID := uuid.New()
	// kursi sudah dilepas waktu masuk status 6
	itemID := seedItem(t, db, 5)
	o := seedOrder(t, db, vendorID, itemID, model.OrderStatusCanceledPendingRefund, 3)

	got, err := svc.UpdateStatusByVendor(ctx, vendorID, o.OrderID, &dto.UpdateAdminOrderRequest{
		PaidStatus: model.OrderStatusRefunded,
	})
	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusRefunded, got.OrderPaidStatus)

	re := reloadOrder(t, db, o.OrderID)
	assert.NotNil(t, re.OrderRefundTime)
	assert.Equal(t, 5, capacityOf(t, db, itemID))
}

func Test_UpdateStatusByVendor_WrongVendor(t *testing.T) {
	db := getTestingDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	itemID := seedItem(t, db, 2)
	o := seedOrder(t, db, uuid.New(), itemID, model.OrderStatusPaid, 3)

	_, err := svc.UpdateStatusByVendor(ctx, uuid.New(), o.OrderID, &dto.UpdateAdminOrderRequest{
		PaidStatus: model.OrderStatusConfirmed,
	})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

// cancel vendor yang nyelip di antara read & write member tidak boleh
// tertimpa balik jadi Paid
func Test_SubmitPaymentReference_LosesToCancel(t *testing.T) {
	db := getTestingDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	vendorID := uuid.New()
	itemID := seedItem(t, db, 2)
	o := seedOrder(t, db, vendorID, itemID, model.OrderStatusPendingPayment, 3)

	// vendor cancel duluan
	_, err := svc.UpdateStatusByVendor(ctx, vendorID, o.OrderID, &dto.UpdateAdminOrderRequest{
		PaidStatus:   model.OrderStatusCanceledNoRefund,
		CancelReason: strPtr("jadwal tabrakan"),
	})
	assert.NoError(t, err)
	assert.Equal(t, 5, capacityOf(t, db, itemID))

	_, err = svc.SubmitPaymentReference(ctx, o.OrderMemberID, o.OrderID, "12345")
	assert.ErrorIs(t, err, ErrLastFiveNotAllowed)

	// order tetap canceled, lastFive tidak tertulis
	re := reloadOrder(t, db, o.OrderID)
	assert.Equal(t, model.OrderStatusCanceledNoRefund, re.OrderPaidStatus)
	assert.Nil(t, re.OrderLastFiveDigits)
}

func Test_SubmitPaymentReference_HappyPath(t *testing.T) {
	db := getTestingDB(t)
	svc := NewOrderService(db)
	ctx := context.Background()

	itemID := seedItem(t, db, 2)
	o := seedOrder(t, db, uuid.New(), itemID, model.OrderStatusPendingPayment, 3)

	got, err := svc.SubmitPaymentReference(ctx, o.OrderMemberID, o.OrderID, "54321")
	assert.NoError(t, err)
	assert.Equal(t, model.OrderStatusPaid, got.OrderPaidStatus)

	re := reloadOrder(t, db, o.OrderID)
	assert.Equal(t, model.OrderStatusPaid, re.OrderPaidStatus)
	assert.NotNil(t, re.OrderPaidTime)
	if assert.NotNil(t, re.OrderLastFiveDigits) {
		assert.Equal(t, "54321", *re.OrderLastFiveDigits)
	}
}
