// file: internals/features/orders/orders/service/order_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalogService "ciaocraft_backend/internals/features/courses/courses/service"
	dto "ciaocraft_backend/internals/features/orders/orders/dto"
	model "ciaocraft_backend/internals/features/orders/orders/model"
)

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrCancelReasonRequired = errors.New("cancelReason is required when cancelling an order")
	ErrLastFiveNotAllowed   = errors.New("lastFiveDigits can only be submitted while order is pending payment")
)

func forUpdate() clause.Expression {
	return clause.Locking{Strength: "UPDATE"}
}

type OrderService struct {
	DB      *gorm.DB
	Catalog *catalogService.CatalogValidator
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{
		DB:      db,
		Catalog: catalogService.NewCatalogValidator(db),
	}
}

/* =======================================================================
   Create
   validate → reserve → insert order, SATU transaksi.
   Insert gagal ⇒ reservasi ikut rollback, tidak ada kursi bocor.
======================================================================= */

func (s *OrderService) CreateOrder(ctx context.Context, memberID uuid.UUID, req *dto.CreateOrderRequest, start, end time.Time) (*model.Order, error) {
	var created *model.Order

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snap, err := s.Catalog.CheckBookable(ctx, req.VendorID, req.CourseID, req.CourseItemID)
		if err != nil {
			return err
		}

		// atomic check-and-decrement; kalah race ⇒ ErrNotAvailable
		if err := Reserve(ctx, tx, req.CourseItemID, req.Count); err != nil {
			return err
		}

		o := &model.Order{
			OrderMemberID:     memberID,
			OrderVendorID:     req.VendorID,
			OrderCourseID:     req.CourseID,
			OrderCourseItemID: req.CourseItemID,

			// snapshot dari katalog, BUKAN dari body request
			OrderVendorName:     snap.VendorName,
			OrderCourseName:     snap.CourseName,
			OrderCourseItemName: snap.CourseItemName,

			OrderCount:      req.Count,
			OrderPrice:      req.Price,
			OrderTotalPrice: req.TotalPrice,

			OrderCourseStartTime: start,
			OrderCourseEndTime:   end,

			OrderLocation: req.Location,
			OrderNote:     req.Note,

			OrderPaymentType: model.PaymentTypeATM,
			OrderPaidStatus:  model.OrderStatusPendingPayment,
		}
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

/* =======================================================================
   Member: submit 5 digit terakhir (0 → 1)
======================================================================= */

func (s *OrderService) SubmitPaymentReference(ctx context.Context, memberID, orderID uuid.UUID, lastFive string) (*model.Order, error) {
	var o model.Order
	if err := s.DB.WithContext(ctx).
		First(&o, "order_id = ? AND order_member_id = ?", orderID, memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if o.OrderPaidStatus != model.OrderStatusPendingPayment {
		return nil, ErrLastFiveNotAllowed
	}

	now := time.Now()

	// conditional update: status ikut di WHERE supaya tidak menimpa
	// transisi vendor (mis. cancel) yang nyelip setelah read di atas
	res := s.DB.WithContext(ctx).
		Model(&model.Order{}).
		Where("order_id = ? AND order_paid_status = ?", o.OrderID, model.OrderStatusPendingPayment).
		Updates(map[string]any{
			"order_last_five_digits": lastFive,
			"order_paid_status":      model.OrderStatusPaid,
			"order_paid_time":        now,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrLastFiveNotAllowed
	}

	o.OrderLastFiveDigits = &lastFive
	o.OrderPaidStatus = model.OrderStatusPaid
	o.OrderPaidTime = &now
	return &o, nil
}

/* =======================================================================
   Vendor: transisi status (2/5/6/7)
======================================================================= */

func (s *OrderService) UpdateStatusByVendor(ctx context.Context, vendorID, orderID uuid.UUID, req *dto.UpdateAdminOrderRequest) (*model.Order, error) {
	if RequiresCancelReason(req.PaidStatus) &&
		(req.CancelReason == nil || *req.CancelReason == "") {
		return nil, ErrCancelReasonRequired
	}

	var o model.Order
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// lock baris order supaya dua PATCH barengan tidak dobel release
		if err := tx.
			Clauses(forUpdate()).
			First(&o, "order_id = ? AND order_vendor_id = ?", orderID, vendorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if err := CheckTransition(o.OrderPaidStatus, req.PaidStatus); err != nil {
			return err
		}

		now := time.Now()
		updates := map[string]any{"order_paid_status": req.PaidStatus}

		switch req.PaidStatus {
		case model.OrderStatusConfirmed:
			updates["order_confirm_time"] = now
			o.OrderConfirmTime = &now
		case model.OrderStatusCanceledNoRefund, model.OrderStatusCanceledPendingRefund:
			updates["order_cancel_time"] = now
			updates["order_cancel_reason"] = *req.CancelReason
			o.OrderCancelTime = &now
			o.OrderCancelReason = req.CancelReason
		case model.OrderStatusRefunded:
			updates["order_refund_time"] = now
			o.OrderRefundTime = &now
		}

		if err := tx.Model(&model.Order{}).
			Where("order_id = ?", o.OrderID).
			Updates(updates).Error; err != nil {
			return err
		}

		// cancel mengembalikan kursi ke ledger (refund tidak — kursinya
		// sudah dilepas waktu masuk status 6)
		if IsCancelStatus(req.PaidStatus) {
			if err := Release(ctx, tx, o.OrderCourseItemID, o.OrderCount); err != nil {
				return err
			}
		}

		o.OrderPaidStatus = req.PaidStatus
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &o, nil
}

/* =======================================================================
   Sweep: Confirmed → Completed setelah jadwal kelas lewat
======================================================================= */

func (s *OrderService) CompleteElapsed(ctx context.Context, now time.Time) (int64, error) {
	res := s.DB.WithContext(ctx).
		Model(&model.Order{}).
		Where("order_paid_status = ? AND order_course_end_time < ?", model.OrderStatusConfirmed, now).
		Update("order_paid_status", model.OrderStatusCompleted)
	return res.RowsAffected, res.Error
}
