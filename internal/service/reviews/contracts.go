package reviews

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
}

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
}

// HotelRepository интерфейс репозитория отелей
type HotelRepository interface {
	GetHotelByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
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
