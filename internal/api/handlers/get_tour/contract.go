package get_tour

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/service/catalog/models"
)

type CatalogService interface {
	GetTour(ctx context.Context, tourID int64) (*models.TourDetailResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
