package create_review

import (
	"github.com/m04kA/SMC-TourService/internal/service/reviews"
)

// CreateReviewRequest HTTP request model
// Указывается ровно одно из полей tourId и hotelId
type CreateReviewRequest struct {
	TourID  *int64 `json:"tourId,omitempty"`
	HotelID *int64 `json:"hotelId,omitempty"`
	Rating  int    `json:"rating"`
	Text    string `json:"text"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateReviewRequest) ToServiceRequest(userID int64) *reviews.SubmitRequest {
	return &reviews.SubmitRequest{
		UserID:  userID,
		TourID:  r.TourID,
		HotelID: r.HotelID,
		Rating:  r.Rating,
		Text:    r.Text,
	}
}
