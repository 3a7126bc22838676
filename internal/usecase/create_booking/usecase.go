package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
	tourRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/tour"
	userRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/user"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

// UseCase use case для бронирования тура
// Места не списываются: бронирование создается в статусе pending,
// списание происходит при подтверждении.
type UseCase struct {
	bookingRepo  BookingRepository
	tourRepo     TourRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tourRepo TourRepository,
	userRepo UserRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		tourRepo:     tourRepo,
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case бронирования тура
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, tour=%d, headcount=%d", req.UserID, req.TourID, req.Headcount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	today := types.DateOf(now.In(uc.location))

	// 2. Проверяем пользователя
	if _, err := uc.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("CreateBooking: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("CreateBooking: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	// 3. Получаем тур
	tour, err := uc.tourRepo.GetByID(ctx, req.TourID)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			uc.logger.Warn("CreateBooking: tour id=%d not found", req.TourID)
			return nil, ErrTourNotFound
		}
		uc.logger.Error("CreateBooking: failed to get tour id=%d: %v", req.TourID, err)
		return nil, fmt.Errorf("%w: failed to get tour: %v", ErrInternal, err)
	}

	// 4. Тур не должен быть завершен
	if tour.HasEnded(today) {
		uc.logger.Warn("CreateBooking: tour id=%d ended on %s", tour.ID, tour.EndDate)
		return nil, ErrTourExpired
	}

	// 5. Проверяем вместимость (без списания мест)
	if err := validateCapacity(tour, req.Headcount); err != nil {
		uc.logger.Warn("CreateBooking: tour id=%d: %v", tour.ID, err)
		return nil, err
	}

	// 6. Создаем бронирование в статусе pending
	booking, err := domain.NewBooking(req.UserID, req.TourID, req.Headcount, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	return &Response{
		ID:        created.ID,
		UserID:    created.UserID,
		TourID:    created.TourID,
		TourTitle: tour.Title,
		Headcount: created.Headcount,
		Status:    string(created.Status),
		TotalCost: created.TotalCost(tour.Price),
		CreatedAt: created.CreatedAt,
		UpdatedAt: created.UpdatedAt,
	}, nil
}
