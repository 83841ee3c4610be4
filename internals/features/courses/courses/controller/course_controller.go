// file: internals/features/courses/courses/controller/course_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ciaocraft_backend/internals/features/courses/courses/dto"
	model "ciaocraft_backend/internals/features/courses/courses/model"
	teacherModel "ciaocraft_backend/internals/features/courses/teachers/model"
	helper "ciaocraft_backend/internals/helpers"
)

type CourseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{
		DB:        db,
		Validator: validator.New(),
	}
}

/* =======================================================================
   Back (vendor)
======================================================================= */

// POST /courses — bikin course baru (boleh sekalian nested items)
func (h *CourseController) Create(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	for i := range req.CourseItems {
		if err := req.CourseItems[i].Validate(); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
	}

	// teacher harus milik vendor ini
	var teacher teacherModel.Teacher
	if err := h.DB.WithContext(c.Context()).
		First(&teacher, "teacher_id = ? AND teacher_vendor_id = ?", req.CourseTeacherID, vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "teacher not found for this vendor")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	m := req.ToModel(vendorID)
	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "create course failed: "+err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course berhasil dibuat", dto.FromModel(m))
}

// GET /courses — semua course milik vendor (termasuk unlisted, tanpa yang deleted)
func (h *CourseController) ListOwn(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	p := helper.ResolvePaging(c, 25, 200)

	base := h.DB.WithContext(c.Context()).
		Model(&model.Course{}).
		Where("course_vendor_id = ? AND course_status <> ?", vendorID, model.CourseStatusDeleted)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Course
	if err := base.
		Preload("CourseItems", "course_item_status <> ?", model.CourseItemStatusDeleted).
		Order("course_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]*dto.CourseResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.FromModel(&list[i]))
	}
	return helper.Success(c, "Berhasil ambil course", fiber.Map{
		"courses":    out,
		"pagination": helper.BuildPagination(p.Page, p.PerPage, len(out), total),
	})
}

// PATCH /courses/:courseId
func (h *CourseController) Update(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid course id")
	}

	m, ferr := h.findOwnCourse(c, vendorID, courseID)
	if ferr != nil {
		return ferr
	}

	var req dto.UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.Apply(m)

	if err := h.DB.WithContext(c.Context()).Save(m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "save failed: "+err.Error())
	}
	return helper.Success(c, "Update course berhasil", dto.FromModel(m))
}

// DELETE /courses/:courseId — soft delete (status=2, baris tetap ada)
func (h *CourseController) Delete(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid course id")
	}

	if _, ferr := h.findOwnCourse(c, vendorID, courseID); ferr != nil {
		return ferr
	}

	if err := h.DB.WithContext(c.Context()).
		Model(&model.Course{}).
		Where("course_id = ?", courseID).
		Update("course_status", model.CourseStatusDeleted).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Course dihapus (soft delete)", nil)
}

/* ===================== Course items ===================== */

// POST /courses/:courseId/items
func (h *CourseController) AddItem(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid course id")
	}
	if _, ferr := h.findOwnCourse(c, vendorID, courseID); ferr != nil {
		return ferr
	}

	var req dto.CreateCourseItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.Validate(); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	item := model.CourseItem{
		CourseItemCourseID: courseID,
		CourseItemName:     req.CourseItemName,
		CourseItemCapacity: *req.CourseItemCapacity,
		CourseItemStartTime: req.CourseItemStart,
		CourseItemEndTime:   req.CourseItemEnd,
		CourseItemStatus:   model.CourseItemStatusListed,
	}
	if req.CourseItemStatus != nil {
		item.CourseItemStatus = *req.CourseItemStatus
	}

	if err := h.DB.WithContext(c.Context()).Create(&item).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "create course item failed: "+err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Course item berhasil dibuat", dto.ItemFromModel(&item))
}

// PATCH /courses/:courseId/items/:itemId
func (h *CourseController) UpdateItem(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid course id")
	}
	itemID, err := uuid.Parse(c.Params("itemId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid item id")
	}
	if _, ferr := h.findOwnCourse(c, vendorID, courseID); ferr != nil {
		return ferr
	}

	var item model.CourseItem
	if err := h.DB.WithContext(c.Context()).
		First(&item, "course_item_id = ? AND course_item_course_id = ? AND course_item_status <> ?",
			itemID, courseID, model.CourseItemStatusDeleted).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "course item not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.UpdateCourseItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	if err := h.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := req.Apply(&item); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err := h.DB.WithContext(c.Context()).Save(&item).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "save failed: "+err.Error())
	}
	return helper.Success(c, "Update course item berhasil", dto.ItemFromModel(&item))
}

// DELETE /courses/:courseId/items/:itemId — soft delete
func (h *CourseController) DeleteItem(c *fiber.Ctx) error {
	vendorID, err := helper.GetVendorIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid course id")
	}
	itemID, err := uuid.Parse(c.Params("itemId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid item id")
	}
	if _, ferr := h.findOwnCourse(c, vendorID, courseID); ferr != nil {
		return ferr
	}

	res := h.DB.WithContext(c.Context()).
		Model(&model.CourseItem{}).
		Where("course_item_id = ? AND course_item_course_id = ?", itemID, courseID).
		Update("course_item_status", model.CourseItemStatusDeleted)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "course item not found")
	}
	return helper.Success(c, "Course item dihapus (soft delete)", nil)
}

/* ===================== internal ===================== */

func (h *CourseController) findOwnCourse(c *fiber.Ctx, vendorID, courseID uuid.UUID) (*model.Course, error) {
	var m model.Course
	if err := h.DB.WithContext(c.Context()).
		First(&m, "course_id = ? AND course_vendor_id = ? AND course_status <> ?",
			courseID, vendorID, model.CourseStatusDeleted).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "course not found")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return &m, nil
}
