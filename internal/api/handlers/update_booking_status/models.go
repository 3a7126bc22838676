package update_booking_status

import (
	"github.com/m04kA/SMC-TourService/internal/service/bookings/models"
)

// UpdateBookingStatusRequest HTTP request model
type UpdateBookingStatusRequest struct {
	Status string `json:"status"` // confirmed, completed или cancelled
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateBookingStatusRequest) ToServiceRequest(userID int64) *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{
		UserID: userID,
		Status: r.Status,
	}
}
