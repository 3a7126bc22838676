package reviews

// SubmitRequest запрос на создание отзыва
// Должен быть указан ровно один объект: тур или отель
type SubmitRequest struct {
	UserID  int64  `json:"userId"`
	TourID  *int64 `json:"tourId,omitempty"`
	HotelID *int64 `json:"hotelId,omitempty"`
	Rating  int    `json:"rating"`
	Text    string `json:"text"`
}
