package favorites

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

// FavoriteRepository интерфейс репозитория избранного
type FavoriteRepository interface {
	Add(ctx context.Context, userID, tourID int64) error
	Remove(ctx context.Context, userID, tourID int64) error
	ListByUser(ctx context.Context, userID int64) ([]*domain.Favorite, error)
}

// TourRepository интерфейс репозитория туров
type TourRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Tour, error)
}

// Clock источник текущей даты каталога
type Clock interface {
	Today() types.Date
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
