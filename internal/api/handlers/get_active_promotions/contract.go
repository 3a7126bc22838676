package get_active_promotions

import (
	"context"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

type RankingService interface {
	ActivePromotions(ctx context.Context, n int) ([]*domain.Promotion, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
