package reviews

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/catalog"
	tourRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/tour"
	userRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/user"
	"github.com/m04kA/SMC-TourService/pkg/ptr"
)

type memReviews struct{ saved []*domain.Review }

func (m *memReviews) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	review.ID = int64(len(m.saved) + 1)
	m.saved = append(m.saved, review)
	return review, nil
}

type fakeTours struct{}

func (fakeTours) GetByID(ctx context.Context, id int64) (*domain.Tour, error) {
	if id != 1 {
		return nil, tourRepo.ErrTourNotFound
	}
	return &domain.Tour{ID: 1}, nil
}

type fakeHotels struct{}

func (fakeHotels) GetHotelByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	if id != 5 {
		return nil, catalogRepo.ErrHotelNotFound
	}
	return &domain.Hotel{ID: 5}, nil
}

type fakeUsers struct{}

func (fakeUsers) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if id != 7 {
		return nil, userRepo.ErrUserNotFound
	}
	return &domain.User{ID: 7, Role: domain.RoleClient}, nil
}

type fixedTime struct{}

func (fixedTime) Now() time.Time { return time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC) }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *memReviews) *Service {
	svc := NewService(repo, fakeTours{}, fakeHotels{}, fakeUsers{}, nopLogger{})
	svc.timeProvider = fixedTime{}
	return svc
}

func TestService_Submit(t *testing.T) {
	repo := &memReviews{}
	svc := newTestService(repo)

	resp, err := svc.Submit(context.Background(), &SubmitRequest{
		UserID:  7,
		HotelID: ptr.Ptr(int64(5)),
		Rating:  4,
		Text:    "  Чисто, тихо, хороший завтрак  ",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "hotel", resp.TargetType)
	assert.Equal(t, int64(5), resp.TargetID)
	assert.Equal(t, "Чисто, тихо, хороший завтрак", resp.Text)
	require.Len(t, repo.saved, 1)
	assert.Nil(t, repo.saved[0].Target.TourID())
}

func TestService_Submit_Errors(t *testing.T) {
	long := make([]rune, domain.MaxReviewTextLength+1)
	for i := range long {
		long[i] = 'а'
	}

	tests := []struct {
		name    string
		req     SubmitRequest
		wantErr error
	}{
		{
			name:    "both targets",
			req:     SubmitRequest{UserID: 7, TourID: ptr.Ptr(int64(1)), HotelID: ptr.Ptr(int64(5)), Rating: 5},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "no target",
			req:     SubmitRequest{UserID: 7, Rating: 5},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "rating out of range",
			req:     SubmitRequest{UserID: 7, TourID: ptr.Ptr(int64(1)), Rating: 6},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "text too long",
			req:     SubmitRequest{UserID: 7, TourID: ptr.Ptr(int64(1)), Rating: 3, Text: string(long)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown user",
			req:     SubmitRequest{UserID: 8, TourID: ptr.Ptr(int64(1)), Rating: 3},
			wantErr: ErrUserNotFound,
		},
		{
			name:    "unknown tour",
			req:     SubmitRequest{UserID: 7, TourID: ptr.Ptr(int64(2)), Rating: 3},
			wantErr: ErrTargetNotFound,
		},
		{
			name:    "unknown hotel",
			req:     SubmitRequest{UserID: 7, HotelID: ptr.Ptr(int64(6)), Rating: 3},
			wantErr: ErrTargetNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memReviews{}
			svc := newTestService(repo)

			_, err := svc.Submit(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.saved)
		})
	}
}
