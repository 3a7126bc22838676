package get_hotel

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/service/catalog/models"
)

type CatalogService interface {
	GetHotel(ctx context.Context, hotelID int64) (*models.HotelDetailResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
