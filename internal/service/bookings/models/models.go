package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID int64 `json:"userId"`
}

// UpdateStatusRequest запрос на смену статуса бронирования сотрудником
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	RequesterID int64   `json:"requesterId"`
	UserID      int64   `json:"userId"`
	Status      *string `json:"status,omitempty"`
}

// GetTourBookingsRequest запрос на получение бронирований тура
type GetTourBookingsRequest struct {
	UserID          int64      `json:"userId"`
	TourID          int64      `json:"tourId"`
	CreatedFrom     *time.Time `json:"createdFrom,omitempty"`     // Начало периода (опционально)
	CreatedTo       *time.Time `json:"createdTo,omitempty"`       // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetTourBookingsRequest) ToDomainFilter() (domain.TourBookingsFilter, error) {
	filter := domain.TourBookingsFilter{
		TourID:          r.TourID,
		CreatedFrom:     r.CreatedFrom,
		CreatedTo:       r.CreatedTo,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	TourID    int64           `json:"tourId"`
	TourTitle string          `json:"tourTitle"`
	Headcount int             `json:"headcount"`
	Status    string          `json:"status"`
	TotalCost decimal.Decimal `json:"totalCost"` // цена тура * количество человек

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
// tour может быть nil, тогда стоимость и название не заполняются
func FromDomainBooking(b *domain.Booking, tour *domain.Tour) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		TourID:    b.TourID,
		Headcount: b.Headcount,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	if tour != nil {
		resp.TourTitle = tour.Title
		resp.TotalCost = b.TotalCost(tour.Price)
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
// tours - туры бронирований по ID
func FromDomainBookingList(bookings []*domain.Booking, tours map[int64]*domain.Tour) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking, tours[booking.TourID]); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}
