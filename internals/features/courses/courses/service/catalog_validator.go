// file: internals/features/courses/courses/service/catalog_validator.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "ciaocraft_backend/internals/features/courses/courses/model"
	vendorModel "ciaocraft_backend/internals/features/vendors/vendors/model"
)

/* =======================================================================
   Catalog validator
   Dipakai order creation: cek referensi vendor/course/item valid & bookable.
   Read-only, tanpa side effect.
======================================================================= */

var (
	// referensi tidak ada (id salah / record tidak ditemukan)
	ErrNotFound = errors.New("referenced catalog record not found")
	// record ada tapi tidak dalam kondisi bisa di-booking
	ErrNotBookable = errors.New("referenced catalog record is not bookable")
)

// BookableSnapshot: nama-nama yang di-copy ke order saat dibuat,
// supaya edit katalog belakangan tidak mengubah tampilan order lama.
type BookableSnapshot struct {
	VendorName     string
	CourseName     string
	CourseItemName string
	CourseItem     courseModel.CourseItem
}

type CatalogValidator struct {
	DB *gorm.DB
}

func NewCatalogValidator(db *gorm.DB) *CatalogValidator {
	return &CatalogValidator{DB: db}
}

// CheckBookable memastikan:
//   - vendor ada & active
//   - course ada, listed, dan milik vendor tsb
//   - course item ada, listed, dan milik course tsb
//
// Return snapshot nama untuk denormalisasi order.
func (s *CatalogValidator) CheckBookable(ctx context.Context, vendorID, courseID, courseItemID uuid.UUID) (*BookableSnapshot, error) {
	var vendor vendorModel.Vendor
	if err := s.DB.WithContext(ctx).
		Select("vendor_id", "vendor_brand_name", "vendor_status").
		First(&vendor, "vendor_id = ?", vendorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !vendor.IsActive() {
		return nil, ErrNotBookable
	}

	var course courseModel.Course
	if err := s.DB.WithContext(ctx).
		Select("course_id", "course_vendor_id", "course_name", "course_status").
		First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	// course harus milik vendor yang direferensikan order
	if course.CourseVendorID != vendorID {
		return nil, ErrNotFound
	}
	if !course.IsListed() {
		return nil, ErrNotBookable
	}

	var item courseModel.CourseItem
	if err := s.DB.WithContext(ctx).
		First(&item, "course_item_id = ?", courseItemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if item.CourseItemCourseID != courseID {
		return nil, ErrNotFound
	}
	if !item.IsListed() {
		return nil, ErrNotBookable
	}

	return &BookableSnapshot{
		VendorName:     vendor.VendorBrandName,
		CourseName:     course.CourseName,
		CourseItemName: item.CourseItemName,
		CourseItem:     item,
	}, nil
}
