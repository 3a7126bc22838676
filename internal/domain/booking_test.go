package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus_Transitions(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		allowed  bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}

	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
}

func TestBooking_TransitionTo(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	b, err := NewBooking(1, 2, 3, now)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, b.Status)

	later := now.Add(time.Hour)
	require.NoError(t, b.TransitionTo(StatusConfirmed, later))
	assert.Equal(t, StatusConfirmed, b.Status)
	assert.Equal(t, later, b.UpdatedAt)

	err = b.TransitionTo(StatusPending, later)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusConfirmed, b.Status)
}

func TestNewBooking_InvalidHeadcount(t *testing.T) {
	_, err := NewBooking(1, 2, 0, time.Now())
	assert.ErrorIs(t, err, ErrInvalidHeadcount)
}

func TestBooking_TotalCost(t *testing.T) {
	b := &Booking{Headcount: 3}
	assert.True(t, b.TotalCost(decimal.RequireFromString("100.50")).Equal(decimal.RequireFromString("301.50")))
}

func TestBookingStatus_HoldsSlots(t *testing.T) {
	assert.False(t, StatusPending.HoldsSlots())
	assert.True(t, StatusConfirmed.HoldsSlots())
	assert.True(t, StatusCompleted.HoldsSlots())
	assert.False(t, StatusCancelled.HoldsSlots())
}
