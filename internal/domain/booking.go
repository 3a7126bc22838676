package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// bookingTransitions allowed status changes
var bookingTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// ParseBookingStatus converts a raw value into a known status
func ParseBookingStatus(value string) (BookingStatus, bool) {
	s := BookingStatus(value)
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return s, true
	}
	return "", false
}

// CanTransitionTo returns true if the state machine allows moving to next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible
func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

// HoldsSlots returns true if the booking has already consumed tour capacity
func (s BookingStatus) HoldsSlots() bool {
	return s == StatusConfirmed || s == StatusCompleted
}

// Booking represents a reservation of a tour for a group of people
type Booking struct {
	ID        int64
	UserID    int64
	TourID    int64
	Headcount int
	Status    BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBooking creates a pending booking
func NewBooking(userID, tourID int64, headcount int, now time.Time) (*Booking, error) {
	if headcount < MinHeadcount {
		return nil, ErrInvalidHeadcount
	}
	return &Booking{
		UserID:    userID,
		TourID:    tourID,
		Headcount: headcount,
		Status:    StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// TransitionTo moves the booking to next status.
// This is the only place where status changes are decided.
func (b *Booking) TransitionTo(next BookingStatus, now time.Time) error {
	if !b.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, next)
	}
	b.Status = next
	b.UpdatedAt = now
	return nil
}

// TotalCost returns the tour price multiplied by headcount.
// Derived on every read, never stored.
func (b *Booking) TotalCost(price decimal.Decimal) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(b.Headcount)))
}

// TourBookingsFilter фильтр для получения бронирований тура
type TourBookingsFilter struct {
	TourID          int64          // Обязательный параметр
	CreatedFrom     *time.Time     // Начало периода (опционально, если nil - без ограничения)
	CreatedTo       *time.Time     // Конец периода (опционально, если nil - без ограничения)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}
