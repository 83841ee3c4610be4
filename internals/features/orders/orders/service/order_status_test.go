package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	model "ciaocraft_backend/internals/features/orders/orders/model"
)

func Test_CanTransition_HappyPath(t *testing.T) {
	assert.True(t, CanTransition(model.OrderStatusPendingPayment, model.OrderStatusPaid))
	assert.True(t, CanTransition(model.OrderStatusPaid, model.OrderStatusConfirmed))
	assert.True(t, CanTransition(model.OrderStatusConfirmed, model.OrderStatusCompleted))
}

func Test_CanTransition_CancelPaths(t *testing.T) {
	// sebelum terminal, cancel selalu boleh
	assert.True(t, CanTransition(model.OrderStatusPendingPayment, model.OrderStatusCanceledExpired))
	assert.True(t, CanTransition(model.OrderStatusPendingPayment, model.OrderStatusCanceledNoRefund))
	assert.True(t, CanTransition(model.OrderStatusPaid, model.OrderStatusCanceledPendingRefund))
	assert.True(t, CanTransition(model.OrderStatusConfirmed, model.OrderStatusCanceledNoRefund))

	// refund hanya dari pending refund
	assert.True(t, CanTransition(model.OrderStatusCanceledPendingRefund, model.OrderStatusRefunded))
	assert.False(t, CanTransition(model.OrderStatusCanceledNoRefund, model.OrderStatusRefunded))
	assert.False(t, CanTransition(model.OrderStatusPaid, model.OrderStatusRefunded))
}

func Test_CanTransition_NoSkipping(t *testing.T) {
	assert.False(t, CanTransition(model.OrderStatusPendingPayment, model.OrderStatusConfirmed))
	assert.False(t, CanTransition(model.OrderStatusPendingPayment, model.OrderStatusCompleted))
	assert.False(t, CanTransition(model.OrderStatusPaid, model.OrderStatusCompleted))
}

func Test_CanTransition_TerminalStates(t *testing.T) {
	terminals := []int{
		model.OrderStatusCompleted,
		model.OrderStatusCanceledExpired,
		model.OrderStatusCanceledNoRefund,
		model.OrderStatusRefunded,
	}
	for _, from := range terminals {
		for to := 0; to <= 7; to++ {
			assert.False(t, CanTransition(from, to), "dari %d ke %d harusnya ditolak", from, to)
		}
	}
}

func Test_CanTransition_NoSelfLoop(t *testing.T) {
	for st := 0; st <= 7; st++ {
		assert.False(t, CanTransition(st, st))
	}
}

func Test_CheckTransition_ReturnsSentinel(t *testing.T) {
	err := CheckTransition(model.OrderStatusPendingPayment, model.OrderStatusCompleted)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	assert.NoError(t, CheckTransition(model.OrderStatusPaid, model.OrderStatusConfirmed))
}

func Test_RequiresCancelReason(t *testing.T) {
	assert.False(t, RequiresCancelReason(model.OrderStatusCanceledExpired))
	assert.True(t, RequiresCancelReason(model.OrderStatusCanceledNoRefund))
	assert.True(t, RequiresCancelReason(model.OrderStatusCanceledPendingRefund))
	assert.False(t, RequiresCancelReason(model.OrderStatusRefunded))
}

func Test_IsCancelStatus(t *testing.T) {
	assert.True(t, IsCancelStatus(model.OrderStatusCanceledExpired))
	assert.True(t, IsCancelStatus(model.OrderStatusCanceledNoRefund))
	assert.True(t, IsCancelStatus(model.OrderStatusCanceledPendingRefund))
	assert.False(t, IsCancelStatus(model.OrderStatusRefunded))
	assert.False(t, IsCancelStatus(model.OrderStatusPaid))
}
