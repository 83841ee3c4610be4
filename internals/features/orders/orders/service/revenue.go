// file: internals/features/orders/orders/service/revenue.go
package service

import (
	"sort"
	"time"

	"ciaocraft_backend/internals/helpers/dbtime"

	model "ciaocraft_backend/internals/features/orders/orders/model"
)

/* =======================================================================
   Revenue summary
   Pendapatan dihitung dari event, bukan dari status sekarang:
   + totalPrice pada order_confirm_time
   - totalPrice pada order_refund_time
   Jadi order yang confirm bulan lalu lalu refund bulan ini tetap benar
   di kedua window.
======================================================================= */

type RevenueSummary struct {
	Today       int            `json:"today"`
	Last7Days   int            `json:"last7Days"`
	Last30Days  int            `json:"last30Days"`
	Monthly     []MonthRevenue `json:"monthly"`
	TotalIncome int            `json:"totalIncome"`
	TotalRefund int            `json:"totalRefund"`
}

type MonthRevenue struct {
	Month   string `json:"month"` // "2025-07"
	Revenue int    `json:"revenue"`
}

type revenueEvent struct {
	at     time.Time
	amount int // signed
}

func eventsOf(orders []model.Order) []revenueEvent {
	evs := make([]revenueEvent, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		if o.OrderConfirmTime != nil {
			evs = append(evs, revenueEvent{at: *o.OrderConfirmTime, amount: o.OrderTotalPrice})
		}
		if o.OrderRefundTime != nil {
			evs = append(evs, revenueEvent{at: *o.OrderRefundTime, amount: -o.OrderTotalPrice})
		}
	}
	return evs
}

// BuildSummary menghitung ringkasan pendapatan vendor relatif ke now.
// Window pakai timezone platform, bukan UTC.
func BuildSummary(orders []model.Order, now time.Time) RevenueSummary {
	loc := dbtime.PlatformLocation()
	now = now.In(loc)

	startToday := dbtime.StartOfDay(now)
	start7 := startToday.AddDate(0, 0, -6)
	start30 := startToday.AddDate(0, 0, -29)
	startMonthly := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc).AddDate(0, -11, 0)

	sum := RevenueSummary{}
	byMonth := map[string]int{}

	for _, ev := range eventsOf(orders) {
		at := ev.at.In(loc)

		if ev.amount > 0 {
			sum.TotalIncome += ev.amount
		} else {
			sum.TotalRefund += -ev.amount
		}

		if !at.Before(startToday) && at.Before(startToday.AddDate(0, 0, 1)) {
			sum.Today += ev.amount
		}
		if !at.Before(start7) && at.Before(startToday.AddDate(0, 0, 1)) {
			sum.Last7Days += ev.amount
		}
		if !at.Before(start30) && at.Before(startToday.AddDate(0, 0, 1)) {
			sum.Last30Days += ev.amount
		}
		if !at.Before(startMonthly) {
			byMonth[at.Format("2006-01")] += ev.amount
		}
	}

	// 12 bulan selalu lengkap, bulan kosong = 0
	cursor := startMonthly
	for i := 0; i < 12; i++ {
		key := cursor.Format("2006-01")
		sum.Monthly = append(sum.Monthly, MonthRevenue{Month: key, Revenue: byMonth[key]})
		cursor = cursor.AddDate(0, 1, 0)
	}
	return sum
}

/* =======================================================================
   Payment ledger
   Satu baris per event (confirm atau refund) di rentang tanggal, urut
   terbaru dulu. Filter pakai timestamp event, bukan createdAt order.
======================================================================= */

type LedgerEntry struct {
	OrderID    string    `json:"orderId"`
	CourseName string    `json:"courseName"`
	Amount     int       `json:"amount"` // negatif untuk refund
	HappenedAt time.Time `json:"happenedAt"`
}

func BuildPaymentLedger(orders []model.Order, start, end time.Time) []LedgerEntry {
	entries := make([]LedgerEntry, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		if o.OrderConfirmTime != nil {
			appendEntry(&entries, o, o.OrderTotalPrice, *o.OrderConfirmTime, start, end)
		}
		if o.OrderRefundTime != nil {
			appendEntry(&entries, o, -o.OrderTotalPrice, *o.OrderRefundTime, start, end)
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].HappenedAt.After(entries[j].HappenedAt)
	})
	return entries
}

func appendEntry(dst *[]LedgerEntry, o *model.Order, amount int, at, start, end time.Time) {
	if at.Before(start) || !at.Before(end) {
		return
	}
	*dst = append(*dst, LedgerEntry{
		OrderID:    o.OrderID.String(),
		CourseName: o.OrderCourseName,
		Amount:     amount,
		HappenedAt: at,
	})
}
