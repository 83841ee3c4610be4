// file: internals/features/orders/orders/service/order_status.go
package service

import (
	"errors"

	model "ciaocraft_backend/internals/features/orders/orders/model"
)

/* =======================================================================
   State machine order
   Transisi dicek per (status sekarang, status diminta) — bukan whitelist
   flat, jadi lompatan ilegal (mis. 0 → 3) pasti ditolak.
======================================================================= */

var ErrInvalidTransition = errors.New("order status transition not permitted from current state")

// allowedTransitions[current] = daftar status tujuan yang sah
var allowedTransitions = map[int][]int{
	model.OrderStatusPendingPayment: {
		model.OrderStatusPaid,
		model.OrderStatusCanceledExpired,
		model.OrderStatusCanceledNoRefund,
		model.OrderStatusCanceledPendingRefund,
	},
	model.OrderStatusPaid: {
		model.OrderStatusConfirmed,
		model.OrderStatusCanceledNoRefund,
		model.OrderStatusCanceledPendingRefund,
	},
	model.OrderStatusConfirmed: {
		model.OrderStatusCompleted,
		model.OrderStatusCanceledNoRefund,
		model.OrderStatusCanceledPendingRefund,
	},
	model.OrderStatusCanceledPendingRefund: {
		model.OrderStatusRefunded,
	},
	// Completed, CanceledExpired, CanceledNoRefund, Refunded = terminal
}

// CanTransition: true kalau requested sah dari current.
func CanTransition(current, requested int) bool {
	for _, next := range allowedTransitions[current] {
		if next == requested {
			return true
		}
	}
	return false
}

// CheckTransition versi error (dipakai service).
func CheckTransition(current, requested int) error {
	if !CanTransition(current, requested) {
		return ErrInvalidTransition
	}
	return nil
}

// RequiresCancelReason: status 5/6 wajib bawa alasan cancel.
func RequiresCancelReason(requested int) bool {
	return requested == model.OrderStatusCanceledNoRefund ||
		requested == model.OrderStatusCanceledPendingRefund
}

// IsCancelStatus: transisi yang melepas kursi kembali ke capacity ledger.
func IsCancelStatus(requested int) bool {
	switch requested {
	case model.OrderStatusCanceledExpired,
		model.OrderStatusCanceledNoRefund,
		model.OrderStatusCanceledPendingRefund:
		return true
	default:
		return false
	}
}

// VendorRequestable: status yang boleh diminta vendor lewat PATCH admin
// (kontrak lama frontend: 2, 5, 6, 7).
func VendorRequestable(requested int) bool {
	switch requested {
	case model.OrderStatusConfirmed,
		model.OrderStatusCanceledNoRefund,
		model.OrderStatusCanceledPendingRefund,
		model.OrderStatusRefunded:
		return true
	default:
		return false
	}
}
