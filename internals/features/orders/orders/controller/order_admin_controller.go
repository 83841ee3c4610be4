// file: internals/features/orders/orders/controller/order_admin_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ciaocraft_backend/internals/features/orders/orders/dto"
	model "ciaocraft_backend/internals/features/orders/orders/model"
	service "ciaocraft_backend/internals/features/orders/orders/service"
	helper "ciaocraft_backend/internals/helpers"
	"ciaocraft_backend/internals/helpers/dbtime"
)

type OrderAdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.OrderService
}

func NewOrderAdminController(db *gorm.DB) *OrderAdminController {
	return &OrderAdminController{
		DB:        db,
		Validator: validator.New(),
		Service:   service.NewOrderService(db),
	}
}

/* ================= Listing ================= */

func parseListQuery(c *fiber.Ctx) (*dto.ListAdminOrdersQuery, error) {
	q := &dto.ListAdminOrdersQuery{
		Keyword: strings.TrimSpace(c.Query("keyword")),
		SortAsc: c.Query("createdAt") == dto.SortCreatedAtAsc,
	}

	paidStatus, err := dto.ParseStatusFilter(c.Query("paidStatus"))
	if err != nil {
		return nil, err
	}
	q.PaidStatus = paidStatus

	loc := dbtime.PlatformLocation()
	if raw := strings.TrimSpace(c.Query("startDate")); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, loc)
		if err != nil {
			return nil, errors.New("startDate format invalid (YYYY-MM-DD)")
		}
		q.StartDate = &t
	}
	if raw := strings.TrimSpace(c.Query("endDate")); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, loc)
		if err != nil {
			return nil, errors.New("endDate format invalid (YYYY-MM-DD)")
		}
		// inclusive: geser ke akhir hari
		t = t.AddDate(0, 0, 1)
		q.EndDate = &t
	}
	return q, nil
}

// GET /admin/orders — listing order vendor dengan filter
func (h *OrderAdminController) List(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q, err := parseListQuery(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	p := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.WithContext(c.Context()).
		Model(&model.Order{}).
		Joins("LEFT JOIN members ON members.member_id = orders.order_member_id").
		Where("orders.order_vendor_id = ?", vendorID)

	if q.PaidStatus != nil {
		if *q.PaidStatus == model.OrderStatusCanceledExpired {
			// kontrak lama: filter status 4 ikut menampilkan 5
			tx = tx.Where("orders.order_paid_status IN ?", []int{
				model.OrderStatusCanceledExpired, model.OrderStatusCanceledNoRefund,
			})
		} else {
			tx = tx.Where("orders.order_paid_status = ?", *q.PaidStatus)
		}
	}
	if q.StartDate != nil {
		tx = tx.Where("orders.order_created_at >= ?", *q.StartDate)
	}
	if q.EndDate != nil {
		tx = tx.Where("orders.order_created_at < ?", *q.EndDate)
	}
	if q.Keyword != "" {
		if id, perr := uuid.Parse(q.Keyword); perr == nil {
			tx = tx.Where("orders.order_id = ?", id)
		} else {
			tx = tx.Where("members.member_name ILIKE ?", "%"+q.Keyword+"%")
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	orderBy := "orders.order_created_at DESC"
	if q.SortAsc {
		orderBy = "orders.order_created_at ASC"
	}

	type row struct {
		model.Order
		MemberName string
	}
	var rows []row
	if err := tx.
		Select("orders.*, members.member_name AS member_name").
		Order(orderBy).
		Offset(p.Offset).Limit(p.Limit).
		Scan(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]*dto.OrderResponse, 0, len(rows))
	for i := range rows {
		r := dto.FromModel(&rows[i].Order)
		r.MemberName = rows[i].MemberName
		out = append(out, r)
	}
	return helper.Success(c, "Berhasil ambil order", fiber.Map{
		"orders":     out,
		"pagination": helper.BuildPagination(p.Page, p.PerPage, len(out), total),
	})
}

// GET /admin/orders/:orderId — hanya order milik vendor sendiri
func (h *OrderAdminController) GetOne(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid order id")
	}

	var o model.Order
	if err := h.DB.WithContext(c.Context()).
		First(&o, "order_id = ? AND order_vendor_id = ?", orderID, vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "order not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Berhasil ambil order", dto.FromModel(&o))
}

// PATCH /admin/orders/:orderId — vendor ubah status (2/5/6/7)
func (h *OrderAdminController) UpdateStatus(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid order id")
	}

	var req dto.UpdateAdminOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	o, err := h.Service.UpdateStatusByVendor(c.Context(), vendorID, orderID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrCancelReasonRequired):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrInvalidTransition):
			return helper.Error(c, fiber.StatusConflict, err.Error())
		default:
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return helper.Success(c, "Status order diperbarui", dto.FromModel(o))
}

/* ================= Revenue ================= */

// GET /admin/orders/summary — ringkasan pendapatan vendor
func (h *OrderAdminController) Summary(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var orders []model.Order
	if err := h.DB.WithContext(c.Context()).
		Where("order_vendor_id = ? AND (order_confirm_time IS NOT NULL OR order_refund_time IS NOT NULL)", vendorID).
		Find(&orders).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	sum := service.BuildSummary(orders, dbtime.NowInPlatform())
	return helper.Success(c, "Berhasil ambil ringkasan pendapatan", sum)
}

// GET /admin/orders/payments — mutasi pendapatan per event
func (h *OrderAdminController) Payments(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	loc := dbtime.PlatformLocation()

	// tanpa query param = tanpa batas (semua event)
	var start time.Time
	end := dbtime.NowInPlatform().AddDate(100, 0, 0)

	if raw := strings.TrimSpace(c.Query("startDate")); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, loc)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "startDate format invalid (YYYY-MM-DD)")
		}
		start = t
	}
	if raw := strings.TrimSpace(c.Query("endDate")); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, loc)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "endDate format invalid (YYYY-MM-DD)")
		}
		end = t.AddDate(0, 0, 1)
	}

	var orders []model.Order
	if err := h.DB.WithContext(c.Context()).
		Where("order_vendor_id = ? AND (order_confirm_time IS NOT NULL OR order_refund_time IS NOT NULL)", vendorID).
		Find(&orders).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	entries := service.BuildPaymentLedger(orders, start, end)
	return helper.Success(c, "Berhasil ambil mutasi pendapatan", entries)
}
