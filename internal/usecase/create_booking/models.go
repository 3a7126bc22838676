package create_booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса на бронирование тура
type Request struct {
	UserID    int64 // ID пользователя
	TourID    int64 // ID тура
	Headcount int   // Количество человек
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	UserID    int64
	TourID    int64
	TourTitle string
	Headcount int
	Status    string
	TotalCost decimal.Decimal // цена тура * количество человек

	CreatedAt time.Time
	UpdatedAt time.Time
}
