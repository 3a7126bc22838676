package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	createBooking "github.com/m04kA/SMC-TourService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	TourID    int64 `json:"tourId"`
	Headcount int   `json:"headcount"`
}

// ToUseCaseRequest конвертирует HTTP request в модель use case
// userID берется из заголовка аутентификации, а не из тела
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:    userID,
		TourID:    r.TourID,
		Headcount: r.Headcount,
	}
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	TourID    int64           `json:"tourId"`
	TourTitle string          `json:"tourTitle"`
	Headcount int             `json:"headcount"`
	Status    string          `json:"status"`
	TotalCost decimal.Decimal `json:"totalCost"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		TourID:    resp.TourID,
		TourTitle: resp.TourTitle,
		Headcount: resp.Headcount,
		Status:    resp.Status,
		TotalCost: resp.TotalCost,
		CreatedAt: resp.CreatedAt,
		UpdatedAt: resp.UpdatedAt,
	}
}
