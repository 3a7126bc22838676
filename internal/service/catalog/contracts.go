package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
}

// ReferenceRepository интерфейс репозитория справочников (страны, города, отели, изображения)
type ReferenceRepository interface {
	ListCountries(ctx context.Context) ([]domain.Country, error)
	ListCities(ctx context.Context) ([]domain.City, error)
	GetHotelByID(ctx context.Context, id int64) (*domain.Hotel, error)
	ListHotelImages(ctx context.Context, hotelID int64) ([]domain.Image, error)
	GetImagesByIDs(ctx context.Context, ids []int64) ([]domain.Image, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetRecentByTour(ctx context.Context, tourID int64, limit int) ([]*domain.Booking, error)
}

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	ListByTarget(ctx context.Context, target domain.ReviewTarget, limit int) ([]*domain.Review, error)
}

// RatingService интерфейс сервиса рейтингов
type RatingService interface {
	Today() types.Date
	AverageRating(ctx context.Context, target domain.ReviewTarget) (decimal.Decimal, bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
