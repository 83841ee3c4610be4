package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ciaocraft_backend/internals/helpers/dbtime"

	model "ciaocraft_backend/internals/features/orders/orders/model"
)

func tp(t time.Time) *time.Time { return &t }

func Test_BuildSummary_Windows(t *testing.T) {
	loc := dbtime.PlatformLocation()
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, loc)

	orders := []model.Order{
		// hari ini
		{OrderTotalPrice: 100, OrderConfirmTime: tp(time.Date(2025, 8, 15, 9, 0, 0, 0, loc))},
		// kemarin: masuk 7d & 30d, bukan today
		{OrderTotalPrice: 200, OrderConfirmTime: tp(time.Date(2025, 8, 14, 23, 0, 0, 0, loc))},
		// 10 hari lalu: hanya 30d
		{OrderTotalPrice: 400, OrderConfirmTime: tp(time.Date(2025, 8, 5, 8, 0, 0, 0, loc))},
		// 2 bulan lalu: hanya monthly/total
		{OrderTotalPrice: 800, OrderConfirmTime: tp(time.Date(2025, 6, 10, 8, 0, 0, 0, loc))},
	}

	sum := BuildSummary(orders, now)

	assert.Equal(t, 100, sum.Today)
	assert.Equal(t, 300, sum.Last7Days)
	assert.Equal(t, 700, sum.Last30Days)
	assert.Equal(t, 1500, sum.TotalIncome)
	assert.Equal(t, 0, sum.TotalRefund)
}

func Test_BuildSummary_RefundCountsAtRefundTime(t *testing.T) {
	loc := dbtime.PlatformLocation()
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, loc)

	// confirm bulan lalu, refund hari ini: income di Juli, refund di Agustus
	orders := []model.Order{
		{
			OrderTotalPrice:  500,
			OrderConfirmTime: tp(time.Date(2025, 7, 10, 9, 0, 0, 0, loc)),
			OrderRefundTime:  tp(time.Date(2025, 8, 15, 10, 0, 0, 0, loc)),
		},
	}

	sum := BuildSummary(orders, now)

	assert.Equal(t, -500, sum.Today)
	assert.Equal(t, 500, sum.TotalIncome)
	assert.Equal(t, 500, sum.TotalRefund)

	var july, august int
	for _, m := range sum.Monthly {
		switch m.Month {
		case "2025-07":
			july = m.Revenue
		case "2025-08":
			august = m.Revenue
		}
	}
	assert.Equal(t, 500, july)
	assert.Equal(t, -500, august)
}

func Test_BuildSummary_TwelveMonthsAlwaysFilled(t *testing.T) {
	loc := dbtime.PlatformLocation()
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, loc)

	sum := BuildSummary(nil, now)

	assert.Len(t, sum.Monthly, 12)
	assert.Equal(t, "2024-09", sum.Monthly[0].Month)
	assert.Equal(t, "2025-08", sum.Monthly[11].Month)
	for _, m := range sum.Monthly {
		assert.Equal(t, 0, m.Revenue)
	}
}

func Test_BuildPaymentLedger_Duality(t *testing.T) {
	loc := dbtime.PlatformLocation()
	confirm := time.Date(2025, 8, 10, 9, 0, 0, 0, loc)
	refund := time.Date(2025, 8, 12, 9, 0, 0, 0, loc)

	orders := []model.Order{
		{
			OrderCourseName:  "手作皮革課",
			OrderTotalPrice:  300,
			OrderConfirmTime: tp(confirm),
			OrderRefundTime:  tp(refund),
		},
	}

	start := time.Date(2025, 8, 1, 0, 0, 0, 0, loc)
	end := time.Date(2025, 9, 1, 0, 0, 0, 0, loc)

	entries := BuildPaymentLedger(orders, start, end)

	assert.Len(t, entries, 2)
	// terbaru dulu
	assert.Equal(t, -300, entries[0].Amount)
	assert.Equal(t, refund, entries[0].HappenedAt)
	assert.Equal(t, 300, entries[1].Amount)
	assert.Equal(t, confirm, entries[1].HappenedAt)
}

func Test_BuildPaymentLedger_FiltersByEventTime(t *testing.T) {
	loc := dbtime.PlatformLocation()

	orders := []model.Order{
		// confirm di luar rentang, refund di dalam: hanya refund masuk
		{
			OrderTotalPrice:  300,
			OrderConfirmTime: tp(time.Date(2025, 7, 10, 9, 0, 0, 0, loc)),
			OrderRefundTime:  tp(time.Date(2025, 8, 12, 9, 0, 0, 0, loc)),
		},
	}

	start := time.Date(2025, 8, 1, 0, 0, 0, 0, loc)
	end := time.Date(2025, 9, 1, 0, 0, 0, 0, loc)

	entries := BuildPaymentLedger(orders, start, end)

	assert.Len(t, entries, 1)
	assert.Equal(t, -300, entries[0].Amount)
}
