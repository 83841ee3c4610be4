// file: internals/features/vendors/vendors/controller/vendor_admin_controller.go
package controller

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dto "ciaocraft_backend/internals/features/vendors/vendors/dto"
	model "ciaocraft_backend/internals/features/vendors/vendors/model"
	helper "ciaocraft_backend/internals/helpers"
)

/* =======================================================================
   Manage (platform admin, role-gated via AdminAuth middleware)
======================================================================= */

// GET /vendors/manage — semua vendor (termasuk pending) untuk review
func (h *VendorController) ListManage(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 50, 500)

	var total int64
	if err := h.DB.WithContext(c.Context()).
		Model(&model.Vendor{}).Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Vendor
	if err := h.DB.WithContext(c.Context()).
		Order("vendor_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]*dto.VendorResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.FromModel(&list[i]))
	}
	return helper.Success(c, "Berhasil ambil semua vendor", fiber.Map{
		"vendors":    out,
		"pagination": helper.BuildPagination(p.Page, p.PerPage, len(out), total),
	})
}

// PATCH /vendors/manage/:vendorId — hasil review: set status (dan password awal saat activate)
func (h *VendorController) ActivateManage(c *fiber.Ctx) error {
	vendorID, err := uuid.Parse(c.Params("vendorId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid vendor id")
	}

	var req dto.ActivateVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Vendor
	if err := h.DB.WithContext(c.Context()).
		First(&m, "vendor_id = ?", vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "vendor not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]any{"vendor_status": req.Status}
	if req.Status == model.VendorStatusActive && req.Password != "" {
		if err := dto.ValidatePasswordRule(req.Password); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "hash password failed")
		}
		updates["vendor_password"] = string(hashed)
	}

	if err := h.DB.WithContext(c.Context()).
		Model(&model.Vendor{}).
		Where("vendor_id = ?", vendorID).
		Updates(updates).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	m.VendorStatus = req.Status
	return helper.Success(c, "Update status vendor berhasil", dto.FromModel(&m))
}

func mustJSON(v any) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}
