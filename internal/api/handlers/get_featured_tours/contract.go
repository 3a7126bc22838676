package get_featured_tours

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/service/ranking"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

type RankingService interface {
	Today() types.Date
	FeaturedTours(ctx context.Context, n int) ([]ranking.FeaturedTour, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
