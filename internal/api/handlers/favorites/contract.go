package favorites

import (
	"context"

	favoritesService "github.com/m04kA/SMC-TourService/internal/service/favorites"
)

type FavoriteService interface {
	Add(ctx context.Context, requesterID, userID, tourID int64) error
	Remove(ctx context.Context, requesterID, userID, tourID int64) error
	List(ctx context.Context, requesterID, userID int64) (*favoritesService.FavoriteListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
