// file: internals/features/courses/courses/controller/course_public_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "ciaocraft_backend/internals/features/courses/courses/dto"
	model "ciaocraft_backend/internals/features/courses/courses/model"
	helper "ciaocraft_backend/internals/helpers"
)

/* =======================================================================
   Front (publik) — hanya course listed
======================================================================= */

// GET /courses/search?keyword=&location=&vendorId=
func (h *CourseController) Search(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 25, 200)

	q := h.DB.WithContext(c.Context()).
		Model(&model.Course{}).
		Where("course_status = ?", model.CourseStatusListed)

	if kw := strings.TrimSpace(c.Query("keyword")); kw != "" {
		q = q.Where("course_name ILIKE ?", "%"+kw+"%")
	}
	if loc := strings.TrimSpace(c.Query("location")); loc != "" {
		q = q.Where("course_location = ?", loc)
	}
	if v := strings.TrimSpace(c.Query("vendorId")); v != "" {
		vendorID, err := uuid.Parse(v)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid vendorId")
		}
		q = q.Where("course_vendor_id = ?", vendorID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var list []model.Course
	if err := q.
		Order("course_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]*dto.CourseResponse, 0, len(list))
	for i := range list {
		out = append(out, dto.FromModel(&list[i]))
	}
	return helper.Success(c, "Berhasil ambil daftar course", fiber.Map{
		"courses":    out,
		"pagination": helper.BuildPagination(p.Page, p.PerPage, len(out), total),
	})
}

// GET /courses/:courseId/detail — detail + item yang masih listed
func (h *CourseController) Detail(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid course id")
	}

	var m model.Course
	if err := h.DB.WithContext(c.Context()).
		Preload("CourseItems", "course_item_status = ?", model.CourseItemStatusListed).
		First(&m, "course_id = ? AND course_status = ?", courseID, model.CourseStatusListed).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Berhasil ambil detail course", dto.FromModel(&m))
}
