package search_tours

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

type fakeTourRepo struct {
	tours []*domain.Tour
	err   error
	calls int
}

func (f *fakeTourRepo) ListTours(ctx context.Context) ([]*domain.Tour, error) {
	f.calls++
	return f.tours, f.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestUseCase_Execute(t *testing.T) {
	repo := &fakeTourRepo{tours: catalogFixture()}
	uc := NewUseCase(repo, time.UTC, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 10, 19, 15, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{
		CountryID:    "1",
		MinPrice:     "1000",
		MaxPrice:     "2000",
		OnlyBookable: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []int64{2, 8, 1, 7}, ids(resp.Tours))
	assert.Empty(t, resp.Warnings)
	assert.Equal(t, "2026-10-19", resp.Today.String())
}

func TestUseCase_Execute_TodayUsesConfiguredTimezone(t *testing.T) {
	repo := &fakeTourRepo{tours: catalogFixture()}
	uc := NewUseCase(repo, time.FixedZone("UTC+3", 3*60*60), nopLogger{})
	// 22:30 UTC on the 18th is already the 19th in UTC+3, tour 5 has ended there
	uc.timeProvider = fixedTime{now: time.Date(2026, 10, 18, 22, 30, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{OnlyBookable: true})
	require.NoError(t, err)
	assert.Equal(t, "2026-10-19", resp.Today.String())
	assert.NotContains(t, ids(resp.Tours), int64(5))
}

func TestUseCase_Execute_ReturnsWarnings(t *testing.T) {
	repo := &fakeTourRepo{tours: catalogFixture()}
	uc := NewUseCase(repo, nil, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{MinPrice: "lots", OnlyBookable: true})
	require.NoError(t, err)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, "min_price", resp.Warnings[0].Field)
	assert.Len(t, resp.Tours, 6)
}

func TestUseCase_Execute_RepositoryError(t *testing.T) {
	repo := &fakeTourRepo{err: errors.New("connection refused")}
	uc := NewUseCase(repo, time.UTC, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInternal)
}
