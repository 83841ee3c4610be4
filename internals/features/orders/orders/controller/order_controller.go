// file: internals/features/orders/orders/controller/order_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogService "ciaocraft_backend/internals/features/courses/courses/service"
	dto "ciaocraft_backend/internals/features/orders/orders/dto"
	model "ciaocraft_backend/internals/features/orders/orders/model"
	service "ciaocraft_backend/internals/features/orders/orders/service"
	helper "ciaocraft_backend/internals/helpers"
)

type OrderController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Service   *service.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{
		DB:        db,
		Validator: validator.New(),
		Service:   service.NewOrderService(db),
	}
}

// POST /orders — member bikin order baru (reservasi kursi ikut di sini)
func (h *OrderController) Create(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	start, end, err := req.Validate()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	o, err := h.Service.CreateOrder(c.Context(), memberID, &req, start, end)
	if err != nil {
		switch {
		case errors.Is(err, catalogService.ErrNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, catalogService.ErrNotBookable):
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotAvailable):
			return helper.Error(c, fiber.StatusConflict, err.Error())
		default:
			log.Printf("[ERROR] create order gagal: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "create order failed")
		}
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Order dibuat", dto.FromModel(o))
}

// GET /orders — semua order milik member, terbaru dulu.
// Opsional: ?paidStatus= dan ?createdAt=CREATED_AT_ASC.
func (h *OrderController) ListOwn(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	p := helper.ResolvePaging(c, 20, 100)

	paidStatus, err := dto.ParseStatusFilter(c.Query("paidStatus"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	q := h.DB.WithContext(c.Context()).
		Model(&model.Order{}).
		Where("order_member_id = ?", memberID)
	if paidStatus != nil {
		q = q.Where("order_paid_status = ?", *paidStatus)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	orderBy := "order_created_at DESC"
	if c.Query("createdAt") == dto.SortCreatedAtAsc {
		orderBy = "order_created_at ASC"
	}

	var list []model.Order
	if err := q.
		Order(orderBy).
		Offset(p.Offset).Limit(p.Limit).
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]*dto.OrderResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.FromModel(&list[i]))
	}
	return helper.Success(c, "Berhasil ambil order", fiber.Map{
		"orders":     out,
		"pagination": helper.BuildPagination(p.Page, p.PerPage, len(out), total),
	})
}

// GET /orders/:orderId — hanya milik sendiri
func (h *OrderController) GetOne(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid order id")
	}

	var o model.Order
	if err := h.DB.WithContext(c.Context()).
		First(&o, "order_id = ? AND order_member_id = ?", orderID, memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "order not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Berhasil ambil order", dto.FromModel(&o))
}

// PATCH /orders/:orderId — submit 5 digit terakhir rekening (0 → 1)
func (h *OrderController) SubmitPaymentReference(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid order id")
	}

	var req dto.UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	o, err := h.Service.SubmitPaymentReference(c.Context(), memberID, orderID, req.LastFiveDigits)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			return helper.Error(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrLastFiveNotAllowed),
			errors.Is(err, service.ErrInvalidTransition):
			return helper.Error(c, fiber.StatusConflict, err.Error())
		default:
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return helper.Success(c, "Data pembayaran tersimpan", dto.FromModel(o))
}
