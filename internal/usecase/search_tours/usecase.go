package search_tours

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-TourService/pkg/types"
)

// UseCase use case поиска туров
type UseCase struct {
	tourRepo     TourRepository
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс, в котором определяется текущая дата
func NewUseCase(tourRepo TourRepository, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		tourRepo:     tourRepo,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет поиск туров
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	criteria, warnings := ParseCriteria(req)
	for _, w := range warnings {
		uc.logger.Warn("SearchTours: %v", w)
	}

	today := types.DateOf(uc.timeProvider.Now().In(uc.location))

	tours, err := uc.tourRepo.ListTours(ctx)
	if err != nil {
		uc.logger.Error("SearchTours: failed to list tours: %v", err)
		return nil, fmt.Errorf("%w: failed to list tours: %v", ErrInternal, err)
	}

	result := FilterTours(tours, criteria, today)

	uc.logger.Info("SearchTours: q=%q only_bookable=%t today=%s matched %d of %d tours",
		criteria.FreeText, criteria.OnlyBookable, today, len(result), len(tours))

	return &Response{
		Tours:    result,
		Criteria: criteria,
		Warnings: warnings,
		Today:    today,
	}, nil
}
