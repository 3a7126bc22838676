package ranking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	ListTours(ctx context.Context) ([]*domain.Tour, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountByTour(ctx context.Context) (map[int64]int, error)
}

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	RatingStats(ctx context.Context, target domain.ReviewTarget) (domain.RatingSummary, error)
}

// PromotionRepository интерфейс репозитория акций
type PromotionRepository interface {
	ListAll(ctx context.Context) ([]*domain.Promotion, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
