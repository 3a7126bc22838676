package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.TourID <= 0 {
		return fmt.Errorf("%w: tourID must be positive", ErrInvalidInput)
	}

	if req.Headcount < domain.MinHeadcount {
		return fmt.Errorf("%w: headcount must be at least %d", ErrInvalidInput, domain.MinHeadcount)
	}

	return nil
}

// validateCapacity проверяет, что в туре хватает свободных мест
func validateCapacity(tour *domain.Tour, headcount int) error {
	if !tour.CanHost(headcount) {
		return fmt.Errorf("%w: requested %d, available %d", domain.ErrInsufficientSlots, headcount, tour.AvailableSlots)
	}
	return nil
}
