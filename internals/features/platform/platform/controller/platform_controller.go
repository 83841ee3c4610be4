// file: internals/features/platform/platform/controller/platform_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "ciaocraft_backend/internals/features/platform/platform/dto"
	model "ciaocraft_backend/internals/features/platform/platform/model"
	helper "ciaocraft_backend/internals/helpers"
)

type PlatformController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewPlatformController(db *gorm.DB) *PlatformController {
	return &PlatformController{DB: db, Validator: validator.New()}
}

// GET /platforms/:nameEn — publik, lookup by nama EN
func (h *PlatformController) GetByNameEN(c *fiber.Ctx) error {
	nameEN := strings.TrimSpace(c.Params("nameEn"))
	if nameEN == "" {
		return helper.Error(c, fiber.StatusBadRequest, "platform name is required")
	}

	var p model.Platform
	if err := h.DB.WithContext(c.Context()).
		First(&p, "platform_name_en = ?", nameEN).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "platform not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Berhasil ambil info platform", p)
}

// POST /platforms — admin only
func (h *PlatformController) Create(c *fiber.Ctx) error {
	var req dto.CreatePlatformRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	req.Trim()
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var existing model.Platform
	err := h.DB.WithContext(c.Context()).
		First(&existing, "platform_name_en = ?", req.PlatformNameEN).Error
	if err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "platform name already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	p := req.ToModel()
	if err := h.DB.WithContext(c.Context()).Create(p).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "create platform failed: "+err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Platform dibuat", p)
}
