package service

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	courseModel "ciaocraft_backend/internals/features/courses/courses/model"
	model "ciaocraft_backend/internals/features/orders/orders/model"
)

// butuh Postgres beneran; set TEST_DATABASE_DSN untuk menjalankan
func getTestingDB(t *testing.T) *gorm.DB {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("connect test db: %v", err)
	}
	if err := db.AutoMigrate(&courseModel.CourseItem{}, &model.Order{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedItem(t *testing.T, db *gorm.DB, capacity int) uuid.UUID {
	item := courseModel.CourseItem{
		CourseItemCourseID:  uuid.New(),
		CourseItemName:      "test slot",
		CourseItemCapacity:  capacity,
		CourseItemStartTime: time.Now().Add(24 * time.Hour),
		CourseItemEndTime:   time.Now().Add(26 * time.Hour),
		CourseItemStatus:    courseModel.CourseItemStatusListed,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return item.CourseItemID
}

func capacityOf(t *testing.T, db *gorm.DB, id uuid.UUID) int {
	var item courseModel.CourseItem
	if err := db.First(&item, "course_item_id = ?", id).Error; err != nil {
		t.Fatalf("reload item: %v", err)
	}
	return item.CourseItemCapacity
}

func Test_Reserve_DecrementsCapacity(t *testing.T) {
	db := getTestingDB(t)
	id := seedItem(t, db, 10)
	ctx := context.Background()

	assert.NoError(t, Reserve(ctx, db, id, 3))
	assert.Equal(t, 7, capacityOf(t, db, id))
}

func Test_Reserve_FailsWhenInsufficient(t *testing.T) {
	db := getTestingDB(t)
	id := seedItem(t, db, 2)
	ctx := context.Background()

	err := Reserve(ctx, db, id, 3)
	assert.ErrorIs(t, err, ErrNotAvailable)
	// gagal = tidak ada perubahan
	assert.Equal(t, 2, capacityOf(t, db, id))
}

func Test_Reserve_UnknownItem(t *testing.T) {
	db := getTestingDB(t)
	ctx := context.Background()

	err := Reserve(ctx, db, uuid.New(), 1)
	assert.ErrorIs(t, err, ErrNotAvailable)
}

// dua reservasi barengan memperebutkan 5 kursi: persis satu yang menang
func Test_Reserve_ConcurrentOversell(t *testing.T) {
	db := getTestingDB(t)
	id := seedItem(t, db, 5)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = Reserve(ctx, db, id, 3)
		}(i)
	}
	wg.Wait()

	var ok, failed int
	for _, err := range errs {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, ErrNotAvailable)
			failed++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 2, capacityOf(t, db, id))
}

func Test_Release_RestoresCapacity(t *testing.T) {
	db := getTestingDB(t)
	id := seedItem(t, db, 5)
	ctx := context.Background()

	assert.NoError(t, Reserve(ctx, db, id, 4))
	assert.NoError(t, Release(ctx, db, id, 4))
	assert.Equal(t, 5, capacityOf(t, db, id))
}
