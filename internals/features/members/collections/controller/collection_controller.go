// file: internals/features/members/collections/controller/collection_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "ciaocraft_backend/internals/features/members/collections/model"
	courseDTO "ciaocraft_backend/internals/features/courses/courses/dto"
	courseModel "ciaocraft_backend/internals/features/courses/courses/model"
	helper "ciaocraft_backend/internals/helpers"
)

type CollectionController struct {
	DB *gorm.DB
}

func NewCollectionController(db *gorm.DB) *CollectionController {
	return &CollectionController{DB: db}
}

// GET /collections — daftar course yang di-favorit member
func (h *CollectionController) List(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var list []model.Collection
	if err := h.DB.WithContext(c.Context()).
		Where("collection_member_id = ?", memberID).
		Order("collection_created_at DESC").
		Find(&list).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// ambil course-nya sekalian (yang masih listed)
	courseIDs := make([]uuid.UUID, 0, len(list))
	for i := range list {
		courseIDs = append(courseIDs, list[i].CollectionCourseID)
	}
	courseByID := map[uuid.UUID]*courseModel.Course{}
	if len(courseIDs) > 0 {
		var courses []courseModel.Course
		if err := h.DB.WithContext(c.Context()).
			Where("course_id IN ?", courseIDs).
			Find(&courses).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		for i := range courses {
			courseByID[courses[i].CourseID] = &courses[i]
		}
	}

	type entry struct {
		CollectionID uuid.UUID                `json:"collection_id"`
		Course       *courseDTO.CourseResponse `json:"course,omitempty"`
	}
	out := make([]entry, 0, len(list))
	for i := range list {
		e := entry{CollectionID: list[i].CollectionID}
		if cm, ok := courseByID[list[i].CollectionCourseID]; ok {
			e.Course = courseDTO.FromModel(cm)
		}
		out = append(out, e)
	}
	return helper.Success(c, "Berhasil ambil koleksi", out)
}

// POST /collections — tambah favorit (unik per member+course)
func (h *CollectionController) Add(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var body struct {
		CourseID string `json:"courseId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid json: "+err.Error())
	}
	courseID, err := uuid.Parse(strings.TrimSpace(body.CourseID))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid courseId")
	}

	// course harus ada & belum dihapus
	var course courseModel.Course
	if err := h.DB.WithContext(c.Context()).
		First(&course, "course_id = ? AND course_status <> ?", courseID, courseModel.CourseStatusDeleted).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "course not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var existing model.Collection
	err = h.DB.WithContext(c.Context()).
		First(&existing, "collection_member_id = ? AND collection_course_id = ?", memberID, courseID).Error
	if err == nil {
		return helper.Error(c, fiber.StatusBadRequest, "course already collected")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	m := model.Collection{
		CollectionMemberID: memberID,
		CollectionCourseID: courseID,
	}
	if err := h.DB.WithContext(c.Context()).Create(&m).Error; err != nil {
		// race dengan unique index → treat sebagai dobel
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return helper.Error(c, fiber.StatusBadRequest, "course already collected")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "create collection failed: "+err.Error())
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Berhasil tambah koleksi", m)
}

// DELETE /collections/:collectionId — hanya milik sendiri
func (h *CollectionController) Delete(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	collectionID, err := uuid.Parse(c.Params("collectionId"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "invalid collection id")
	}

	res := h.DB.WithContext(c.Context()).
		Where("collection_id = ? AND collection_member_id = ?", collectionID, memberID).
		Delete(&model.Collection{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "collection not found")
	}
	return helper.Success(c, "Koleksi dihapus", nil)
}
