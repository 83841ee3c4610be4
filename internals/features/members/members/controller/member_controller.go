// file: internals/features/members/members/controller/member_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ciaocraft_backend/internals/constants"
	dto "ciaocraft_backend/internals/features/members/members/dto"
	model "ciaocraft_backend/internals/features/members/members/model"
	helper "ciaocraft_backend/internals/helpers"
)

type MemberController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /members/register
func (h *MemberController) Register(c *fiber.Ctx) error {
	var req dto.RegisterMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.Member
	err := h.DB.WithContext(c.Context()).
		First(&existing, "member_email = ?", req.Email).Error
	if err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "email is already registered")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "hash password failed")
	}

	m := model.Member{
		MemberName:     req.Name,
		MemberEmail:    req.Email,
		MemberPassword: string(hashed),
	}
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "create member failed: "+err.Error())
	}

	token, err := helper.CreateAccessToken(m.MemberID, constants.RoleMember, 24*time.Hour)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "create token failed: "+err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", fiber.Map{
		"token":  token,
		"member": dto.FromModel(&m),
	})
}

// POST /members/login
func (h *MemberController) Login(c *fiber.Ctx) error {
	var req dto.MemberLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.Member
	if err := h.DB.WithContext(c.Context()).
		First(&m, "member_email = ?", req.Email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "account not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(m.MemberPassword), []byte(req.Password)); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "incorrect password")
	}

	now := time.Now()
	if err := h.DB.WithContext(c.Context()).
		Model(&model.Member{}).
		Where("member_id = ?", m.MemberID).
		Update("member_login_at", now).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	m.MemberLoginAt = &now

	token, err := helper.CreateAccessToken(m.MemberID, constants.RoleMember, 24*time.Hour)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "create token failed: "+err.Error())
	}
	return helper.Success(c, "Login berhasil", fiber.Map{
		"token":  token,
		"member": dto.FromModel(&m),
	})
}

// GET /members/me
func (h *MemberController) GetMe(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.Member
	if err := h.DB.WithContext(c.Context()).
		First(&m, "member_id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "member not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Berhasil ambil data member", dto.FromModel(&m))
}

// PATCH /members/me
func (h *MemberController) UpdateMe(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var m model.Member
	if err := h.DB.WithContext(c.Context()).
		First(&m, "member_id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "member not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.Apply(&m)

	if err := h.DB.WithContext(c.Context()).Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "save failed: "+err.Error())
	}
	return helper.Success(c, "Update member berhasil", dto.FromModel(&m))
}
