package reviews

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/m04kA/SMC-TourService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/catalog"
	tourRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/tour"
	userRepo "github.com/m04kA/SMC-TourService/internal/infra/storage/user"
	"github.com/m04kA/SMC-TourService/internal/service/catalog/models"
)

// Service сервис отзывов
type Service struct {
	reviewRepo   ReviewRepository
	tourRepo     TourRepository
	hotelRepo    HotelRepository
	userRepo     UserRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	tourRepo TourRepository,
	hotelRepo HotelRepository,
	userRepo UserRepository,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo:   reviewRepo,
		tourRepo:     tourRepo,
		hotelRepo:    hotelRepo,
		userRepo:     userRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Submit создает отзыв о туре или отеле
func (s *Service) Submit(ctx context.Context, req *SubmitRequest) (*models.ReviewResponse, error) {
	target, err := domain.NewReviewTarget(req.TourID, req.HotelID)
	if err != nil {
		s.logger.Warn("Submit: invalid target from user=%d", req.UserID)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if utf8.RuneCountInString(req.Text) > domain.MaxReviewTextLength {
		s.logger.Warn("Submit: review text too long from user=%d", req.UserID)
		return nil, fmt.Errorf("%w: text longer than %d characters", ErrInvalidInput, domain.MaxReviewTextLength)
	}

	review, err := domain.NewReview(req.UserID, target, req.Rating, req.Text, s.timeProvider.Now())
	if err != nil {
		s.logger.Warn("Submit: invalid review from user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.userRepo.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Submit: failed to get user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: Submit - get user: %v", ErrInternal, err)
	}

	if err := s.checkTarget(ctx, target); err != nil {
		return nil, err
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		s.logger.Error("Submit: failed to save review for %s %d: %v", target.Kind(), target.ID(), err)
		return nil, fmt.Errorf("%w: Submit - create review: %v", ErrInternal, err)
	}

	s.logger.Info("Submit: review id=%d for %s %d, rating=%d", created.ID, target.Kind(), target.ID(), created.Rating)
	resp := models.FromDomainReview(created)
	return &resp, nil
}

// checkTarget проверяет, что тур или отель существует
func (s *Service) checkTarget(ctx context.Context, target domain.ReviewTarget) error {
	var err error
	switch target.Kind() {
	case domain.ReviewTargetTour:
		_, err = s.tourRepo.GetByID(ctx, target.ID())
	case domain.ReviewTargetHotel:
		_, err = s.hotelRepo.GetHotelByID(ctx, target.ID())
	}

	switch {
	case err == nil:
		return nil
	case errors.Is(err, tourRepo.ErrTourNotFound), errors.Is(err, catalogRepo.ErrHotelNotFound):
		s.logger.Warn("Submit: %s %d not found", target.Kind(), target.ID())
		return fmt.Errorf("%w: %s %d", ErrTargetNotFound, target.Kind(), target.ID())
	default:
		s.logger.Error("Submit: failed to check %s %d: %v", target.Kind(), target.ID(), err)
		return fmt.Errorf("%w: Submit - check target: %v", ErrInternal, err)
	}
}
