// file: internals/features/orders/orders/service/capacity_ledger.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	courseModel "ciaocraft_backend/internals/features/courses/courses/model"
)

/* =======================================================================
   Capacity ledger
   Satu-satunya tempat dua request konkuren saling sentuh state yang sama
   (kapasitas course item). Reserve HARUS conditional update satu statement
   — bukan read-then-write di aplikasi — supaya tidak oversell.
======================================================================= */

// kursi tidak cukup (atau item hilang saat reserve)
var ErrNotAvailable = errors.New("course item has insufficient remaining capacity")

// Reserve mengurangi kapasitas item sebanyak count, hanya kalau sisa cukup.
// RowsAffected == 0 berarti kursi tidak cukup → tidak ada mutasi sama sekali.
// db boleh transaction (dipakai order creation) atau DB biasa.
func Reserve(ctx context.Context, db *gorm.DB, courseItemID uuid.UUID, count int) error {
	if count <= 0 {
		return ErrNotAvailable
	}
	res := db.WithContext(ctx).
		Model(&courseModel.CourseItem{}).
		Where("course_item_id = ? AND course_item_capacity >= ?", courseItemID, count).
		UpdateColumn("course_item_capacity", gorm.Expr("course_item_capacity - ?", count))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotAvailable
	}
	return nil
}

// Release mengembalikan kursi (dipakai transisi cancel).
// Catatan: sistem lama tidak pernah release — kursi hangus selamanya setelah
// cancel. Itu bug laten; di sini cancel selalu release.
func Release(ctx context.Context, db *gorm.DB, courseItemID uuid.UUID, count int) error {
	if count <= 0 {
		return nil
	}
	return db.WithContext(ctx).
		Model(&courseModel.CourseItem{}).
		Where("course_item_id = ?", courseItemID).
		UpdateColumn("course_item_capacity", gorm.Expr("course_item_capacity + ?", count)).
		Error
}
