package get_tour_bookings

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-TourService/internal/service/bookings/models"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// from/to - даты создания бронирования (YYYY-MM-DD), to включительно
func ToServiceRequest(
	tourID int64,
	userID int64,
	statusStr string,
	fromStr string,
	toStr string,
	includeInactiveStr string,
) (*models.GetTourBookingsRequest, error) {
	req := &models.GetTourBookingsRequest{
		UserID:          userID,
		TourID:          tourID,
		IncludeInactive: false, // По умолчанию только активные
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if fromStr != "" {
		from, err := types.ParseDate(fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid from value: %w", err)
		}
		start := from.Time()
		req.CreatedFrom = &start
	}

	if toStr != "" {
		to, err := types.ParseDate(toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid to value: %w", err)
		}
		// Последний момент дня to
		end := to.AddDays(1).Time().Add(-time.Nanosecond)
		req.CreatedTo = &end
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
