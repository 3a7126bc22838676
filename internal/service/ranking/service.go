package ranking

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

// Service агрегаты для главной страницы и карточек: популярные туры,
// средний рейтинг и действующие акции
type Service struct {
	tourRepo      TourRepository
	bookingRepo   BookingRepository
	reviewRepo    ReviewRepository
	promotionRepo PromotionRepository
	timeProvider  TimeProvider
	location      *time.Location
	logger        Logger
}

// NewService создает новый экземпляр сервиса ранжирования
func NewService(
	tourRepo TourRepository,
	bookingRepo BookingRepository,
	reviewRepo ReviewRepository,
	promotionRepo PromotionRepository,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		tourRepo:      tourRepo,
		bookingRepo:   bookingRepo,
		reviewRepo:    reviewRepo,
		promotionRepo: promotionRepo,
		timeProvider:  &RealTimeProvider{},
		location:      location,
		logger:        logger,
	}
}

// Today текущая дата в часовом поясе каталога
func (s *Service) Today() types.Date {
	return types.DateOf(s.timeProvider.Now().In(s.location))
}

// FeaturedTours популярные туры (n штук)
func (s *Service) FeaturedTours(ctx context.Context, n int) ([]FeaturedTour, error) {
	today := s.Today()

	tours, err := s.tourRepo.ListTours(ctx)
	if err != nil {
		s.logger.Error("FeaturedTours: failed to list tours: %v", err)
		return nil, fmt.Errorf("%w: FeaturedTours - list tours: %v", ErrInternal, err)
	}

	counts, err := s.bookingRepo.CountByTour(ctx)
	if err != nil {
		s.logger.Error("FeaturedTours: failed to count bookings: %v", err)
		return nil, fmt.Errorf("%w: FeaturedTours - count bookings: %v", ErrInternal, err)
	}

	featured := SelectFeatured(tours, counts, n, today)
	s.logger.Info("FeaturedTours: selected %d of %d tours for %s", len(featured), len(tours), today)

	return featured, nil
}

// AverageRating средняя оценка тура или отеля
// ok == false, если отзывов нет
func (s *Service) AverageRating(ctx context.Context, target domain.ReviewTarget) (avg decimal.Decimal, ok bool, err error) {
	summary, err := s.reviewRepo.RatingStats(ctx, target)
	if err != nil {
		s.logger.Error("AverageRating: failed to get stats for %s %d: %v", target.Kind(), target.ID(), err)
		return decimal.Zero, false, fmt.Errorf("%w: AverageRating - rating stats: %v", ErrInternal, err)
	}

	avg, ok = summary.Average()
	return avg, ok, nil
}

// ActivePromotions действующие акции (n штук)
func (s *Service) ActivePromotions(ctx context.Context, n int) ([]*domain.Promotion, error) {
	today := s.Today()

	promotions, err := s.promotionRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ActivePromotions: failed to list promotions: %v", err)
		return nil, fmt.Errorf("%w: ActivePromotions - list promotions: %v", ErrInternal, err)
	}

	active := SelectActivePromotions(promotions, n, today)
	s.logger.Info("ActivePromotions: %d active of %d on %s", len(active), len(promotions), today)

	return active, nil
}
