package get_countries

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/service/catalog/models"
)

type CatalogService interface {
	ListCountries(ctx context.Context) ([]models.CountryResponse, error)
}

type Logger interface {
	Error(format string, v ...interface{})
}
