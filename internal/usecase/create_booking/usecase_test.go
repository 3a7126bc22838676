package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/domain"
	tourRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/tour"
	userRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/user"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

type fakeBookingRepo struct {
	created []*domain.Booking
	err     error
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	b.ID = int64(len(f.created) + 1)
	f.created = append(f.created, b)
	return b, nil
}

type fakeTourRepo struct {
	tours map[int64]*domain.Tour
}

func (f *fakeTourRepo) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	t, ok := f.tours[id]
	if !ok {
		return nil, tourRepo.ErrTourNotFound
	}
	return t, nil
}

type fakeUserRepo struct {
	err error
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.User{ID: id, Role: domain.RoleClient}, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newUseCase(bookings *fakeBookingRepo, users *fakeUserRepo) *UseCase {
	tours := &fakeTourRepo{tours: map[int64]*domain.Tour{
		1: {
			ID:             1,
			Title:          "Rome weekend",
			Price:          decimal.RequireFromString("250.00"),
			StartDate:      types.MustParseDate("2026-11-01"),
			EndDate:        types.MustParseDate("2026-11-04"),
			AvailableSlots: 5,
		},
		2: {
			ID:             2,
			Title:          "Summer in Crete",
			Price:          decimal.RequireFromString("900.00"),
			StartDate:      types.MustParseDate("2026-07-01"),
			EndDate:        types.MustParseDate("2026-07-10"),
			AvailableSlots: 10,
		},
	}}

	uc := NewUseCase(bookings, tours, users, time.UTC, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)}
	return uc
}

func TestUseCase_Execute_CreatesPendingBooking(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newUseCase(bookings, &fakeUserRepo{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 7, TourID: 1, Headcount: 5})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Rome weekend", resp.TourTitle)
	assert.True(t, resp.TotalCost.Equal(decimal.RequireFromString("1250")))
	require.Len(t, bookings.created, 1)
	assert.Equal(t, 5, bookings.created[0].Headcount)
}

func TestUseCase_Execute_InsufficientSlots(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newUseCase(bookings, &fakeUserRepo{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 7, TourID: 1, Headcount: 6})
	assert.ErrorIs(t, err, domain.ErrInsufficientSlots)
	assert.Empty(t, bookings.created)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		users   *fakeUserRepo
		repoErr error
		wantErr error
	}{
		{"zero headcount", &Request{UserID: 7, TourID: 1, Headcount: 0}, &fakeUserRepo{}, nil, ErrInvalidInput},
		{"missing user id", &Request{TourID: 1, Headcount: 1}, &fakeUserRepo{}, nil, ErrInvalidInput},
		{"unknown user", &Request{UserID: 7, TourID: 1, Headcount: 1}, &fakeUserRepo{err: userRepo.ErrUserNotFound}, nil, ErrUserNotFound},
		{"unknown tour", &Request{UserID: 7, TourID: 99, Headcount: 1}, &fakeUserRepo{}, nil, ErrTourNotFound},
		{"tour ended", &Request{UserID: 7, TourID: 2, Headcount: 1}, &fakeUserRepo{}, nil, ErrTourExpired},
		{"storage failure", &Request{UserID: 7, TourID: 1, Headcount: 1}, &fakeUserRepo{}, errors.New("boom"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(&fakeBookingRepo{err: tt.repoErr}, tt.users)
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
