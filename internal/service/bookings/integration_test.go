//go:build integration
// +build integration

package bookings_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/m04kA/SMC-TourService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/booking"
	tourRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/tour"
	userRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/user"
	"github.com/m04kA/SMC-TourService/internal/service/bookings"
	"github.com/m04kA/SMC-TourService/internal/service/bookings/models"
	"github.com/m04kA/SMC-TourService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TourService/pkg/logger"
	"github.com/m04kA/SMC-TourService/pkg/txmanager"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

type ledgerEnv struct {
	service  *bookings.Service
	tours    *tourRepo.Repository
	users    *userRepo.Repository
	bookings *bookingRepo.Repository
}

// setupLedger поднимает PostgreSQL в контейнере и применяет схему из migrations/
func setupLedger(t *testing.T) *ledgerEnv {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("tours"),
		postgres.WithUsername("tours"),
		postgres.WithPassword("tours"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	schema, err := os.ReadFile("../../../migrations/0001_init.up.sql")
	require.NoError(t, err)
	_, err = db.ExecContext(ctx, string(schema))
	require.NoError(t, err)

	log, err := logger.NewWithWriter(io.Discard, "error")
	require.NoError(t, err)

	wrapped := dbmetrics.Wrap(db, nil)
	env := &ledgerEnv{
		tours:    tourRepo.NewRepository(wrapped),
		users:    userRepo.NewRepository(wrapped),
		bookings: bookingRepo.NewRepository(wrapped),
	}
	env.service = bookings.NewService(env.bookings, env.tours, env.users, txmanager.NewTransactionManager(wrapped), log)
	return env
}

func (e *ledgerEnv) createTour(t *testing.T, slots int) int64 {
	t.Helper()
	start := types.DateOf(time.Now()).AddDays(30)
	tour := &domain.Tour{
		Title:          "Рим за выходные",
		Price:          decimal.RequireFromString("499.90"),
		StartDate:      start,
		EndDate:        start.AddDays(3),
		AvailableSlots: slots,
		Category:       domain.CategoryExcursion,
	}
	require.NoError(t, tour.Validate())

	created, err := e.tours.Create(context.Background(), tour)
	require.NoError(t, err)
	return created.ID
}

func (e *ledgerEnv) createBooking(t *testing.T, userID, tourID int64, headcount int) int64 {
	t.Helper()
	booking, err := domain.NewBooking(userID, tourID, headcount, time.Now())
	require.NoError(t, err)

	created, err := e.bookings.Create(context.Background(), booking)
	require.NoError(t, err)
	return created.ID
}

func TestLedger_ConcurrentConfirmsNeverOversell(t *testing.T) {
	env := setupLedger(t)
	ctx := context.Background()

	client, err := env.users.Create(ctx, &domain.User{Username: "client1", Email: "client1@example.com", Role: domain.RoleClient})
	require.NoError(t, err)

	tourID := env.createTour(t, 5)
	first := env.createBooking(t, client.ID, tourID, 3)
	second := env.createBooking(t, client.ID, tourID, 3)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, id := range []int64{first, second} {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			results[i] = env.service.Confirm(ctx, id)
		}(i, id)
	}
	wg.Wait()

	succeeded, rejected := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrInsufficientSlots):
			rejected++
		default:
			t.Fatalf("unexpected confirm error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)

	tour, err := env.tours.GetByID(ctx, tourID)
	require.NoError(t, err)
	assert.Equal(t, 2, tour.AvailableSlots)
}

func TestLedger_CancelReturnsSlotsOnce(t *testing.T) {
	env := setupLedger(t)
	ctx := context.Background()

	client, err := env.users.Create(ctx, &domain.User{Username: "client2", Email: "client2@example.com", Role: domain.RoleClient})
	require.NoError(t, err)

	tourID := env.createTour(t, 4)
	bookingID := env.createBooking(t, client.ID, tourID, 2)

	require.NoError(t, env.service.Confirm(ctx, bookingID))

	req := &models.CancelBookingRequest{UserID: client.ID}
	require.NoError(t, env.service.Cancel(ctx, bookingID, req))
	require.NoError(t, env.service.Cancel(ctx, bookingID, req))

	tour, err := env.tours.GetByID(ctx, tourID)
	require.NoError(t, err)
	assert.Equal(t, 4, tour.AvailableSlots)

	booking, err := env.bookings.GetByID(ctx, bookingID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, booking.Status)
}

func TestLedger_DoubleConfirmTakesSlotsOnce(t *testing.T) {
	env := setupLedger(t)
	ctx := context.Background()

	client, err := env.users.Create(ctx, &domain.User{Username: "client3", Email: "client3@example.com", Role: domain.RoleClient})
	require.NoError(t, err)

	tourID := env.createTour(t, 10)
	bookingID := env.createBooking(t, client.ID, tourID, 4)

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = env.service.Confirm(ctx, bookingID)
		}(i)
	}
	wg.Wait()

	failed := 0
	for _, err := range results {
		if err != nil {
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			failed++
		}
	}
	assert.Equal(t, 1, failed)

	tour, err := env.tours.GetByID(ctx, tourID)
	require.NoError(t, err)
	assert.Equal(t, 6, tour.AvailableSlots)
}
