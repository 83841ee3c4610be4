// file: internals/features/vendors/vendors/controller/vendor_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ciaocraft_backend/internals/constants"
	dto "ciaocraft_backend/internals/features/vendors/vendors/dto"
	model "ciaocraft_backend/internals/features/vendors/vendors/model"
	helper "ciaocraft_backend/internals/helpers"
)

type VendorController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewVendorController(db *gorm.DB) *VendorController {
	return &VendorController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================================================================
   Front (publik)
======================================================================= */

// POST /vendors/apply — pengajuan vendor baru, masuk status pending
func (h *VendorController) Apply(c *fiber.Ctx) error {
	var req dto.ApplyVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	req.Trim()
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// account tidak boleh dobel
	var existing model.Vendor
	err := h.DB.WithContext(c.Context()).
		First(&existing, "vendor_account = ?", req.Account).Error
	if err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "account is already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	m := model.Vendor{
		VendorAccount:        req.Account,
		VendorRepresentative: req.Representative,
		VendorMobile:         req.Mobile,
		VendorBrandName:      req.BrandName,
		VendorReviewBrief:    req.ReviewBrief,
		VendorStatus:         model.VendorStatusPending,
	}
	if len(req.ReviewLinks) > 0 {
		m.VendorReviewLinks = mustJSON(req.ReviewLinks)
	}
	if len(req.ReviewImages) > 0 {
		m.VendorReviewImages = mustJSON(req.ReviewImages)
	}

	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "create vendor application failed: "+err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pengajuan vendor berhasil dikirim", dto.FromModel(&m))
}

// GET /vendors/check-account/:account — cek ketersediaan account
func (h *VendorController) CheckAccount(c *fiber.Ctx) error {
	account := c.Params("account")
	var existing model.Vendor
	err := h.DB.WithContext(c.Context()).
		First(&existing, "vendor_account = ?", account).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Success(c, "account is available", nil)
	}
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Error(c, fiber.StatusBadRequest, "account is already registered")
}

/* =======================================================================
   Back (vendor login + profil)
======================================================================= */

// POST /vendors/login
func (h *VendorController) Login(c *fiber.Ctx) error {
	var req dto.VendorLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Vendor
	if err := h.DB.WithContext(c.Context()).
		First(&m, "vendor_account = ?", req.Account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "account not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(m.VendorPassword), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "incorrect password")
	}

	// vendor pending/suspended tidak boleh masuk
	switch m.VendorStatus {
	case model.VendorStatusPending:
		return helper.Error(c, fiber.StatusBadRequest, "account is still under review")
	case model.VendorStatusSuspended:
		return helper.Error(c, fiber.StatusBadRequest, "account is suspended, please contact the platform administrator")
	}

	now := time.Now()
	m.VendorLoginAt = &now
	if err := h.DB.WithContext(c.Context()).
		Model(&model.Vendor{}).
		Where("vendor_id = ?", m.VendorID).
		Update("vendor_login_at", now).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	token, err := helper.CreateAccessToken(m.VendorID, constants.RoleVendor, 24*time.Hour)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "create token failed: "+err.Error())
	}

	return helper.Success(c, "Login berhasil", fiber.Map{
		"token":  token,
		"vendor": dto.FromModel(&m),
	})
}

// GET /vendors/me
func (h *VendorController) GetMe(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.Vendor
	if err := h.DB.WithContext(c.Context()).
		First(&m, "vendor_id = ?", vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "vendor not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Berhasil ambil data vendor", dto.FromModel(&m))
}

// PATCH /vendors/me — profil + info bank
func (h *VendorController) UpdateMe(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.Vendor
	if err := h.DB.WithContext(c.Context()).
		First(&m, "vendor_id = ?", vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "vendor not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateVendorRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if !req.Apply(&m) {
		return helper.Error(c, fiber.StatusBadRequest, "no changes submitted")
	}

	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "save failed: "+err.Error())
	}
	return helper.Success(c, "Update vendor berhasil", dto.FromModel(&m))
}

// PATCH /vendors/me/password
func (h *VendorController) UpdatePassword(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdateVendorPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "hash password failed")
	}

	if err := h.DB.WithContext(c.Context()).
		Model(&model.Vendor{}).
		Where("vendor_id = ?", vendorID).
		Update("vendor_password", string(hashed)).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Password berhasil diganti", nil)
}
