package service

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"
)

// StartCompletionScheduler menjalankan sweep berkala: order confirmed
// yang jadwal kelasnya sudah lewat dinaikkan jadi completed.
func StartCompletionScheduler(db *gorm.DB) {
	go func() {
		// interval dari env (default: 1 jam)
		intervalMin := 60
		if val := os.Getenv("ORDER_COMPLETION_INTERVAL_MINUTES"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalMin = parsed
			}
		}

		svc := NewOrderService(db)
		for {
			n, err := svc.CompleteElapsed(context.Background(), time.Now())
			if err != nil {
				log.Printf("[SWEEP ERROR] Gagal update order selesai: %v", err)
			} else if n > 0 {
				log.Printf("[SWEEP] %d order confirmed ditandai completed", n)
			}

			time.Sleep(time.Duration(intervalMin) * time.Minute)
		}
	}()
}
