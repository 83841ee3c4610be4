// file: internals/features/courses/teachers/controller/teacher_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ciaocraft_backend/internals/features/courses/teachers/dto"
	model "ciaocraft_backend/internals/features/courses/teachers/model"
	helper "ciaocraft_backend/internals/helpers"
)

type TeacherController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /teachers (Back)
func (h *TeacherController) Create(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.Teacher{
		TeacherVendorID: vendorID,
		TeacherName:     req.TeacherName,
		TeacherIntro:    req.TeacherIntro,
		TeacherAvatar:   req.TeacherAvatar,
	}
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "create teacher failed: "+err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Teacher berhasil dibuat", dto.FromModel(&m))
}

// GET /teachers (Back)
func (h *TeacherController) ListOwn(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var list []model.Teacher
	if err := h.DB.WithContext(c.Context()).
		Where("teacher_vendor_id = ?", vendorID).
		Order("teacher_created_at DESC").
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]*dto.TeacherResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.FromModel(&list[i]))
	}
	return helper.Success(c, "Berhasil ambil teacher", out)
}

// PATCH /teachers/:teacherId (Back)
func (h *TeacherController) Update(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid teacher id")
	}

	var m model.Teacher
	if err := h.DB.WithContext(c.Context()).
		First(&m, "teacher_id = ? AND teacher_vendor_id = ?", teacherID, vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "teacher not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateTeacherRequest
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
	return helper.Success(c, "Update teacher berhasil", dto.FromModel(&m))
}

// DELETE /teachers/:teacherId (Back) — soft delete via gorm.DeletedAt
func (h *TeacherController) Delete(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	teacherID, err := uuid.Parse(c.Params("teacherId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid teacher id")
	}

	res := h.DB.WithContext(c.Context()).
		Where("teacher_id = ? AND teacher_vendor_id = ?", teacherID, vendorID).
		Delete(&model.Teacher{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "teacher not found")
	}
	return helper.Success(c, "Teacher dihapus", nil)
}
