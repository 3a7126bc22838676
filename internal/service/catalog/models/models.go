package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

// TourResponse карточка тура
type TourResponse struct {
	ID             int64           `json:"id"`
	Title          string          `json:"title"`
	CountryID      *int64          `json:"countryId,omitempty"`
	CountryName    string          `json:"countryName,omitempty"`
	CityID         *int64          `json:"cityId,omitempty"`
	CityName       string          `json:"cityName,omitempty"`
	HotelID        *int64          `json:"hotelId,omitempty"`
	HotelName      string          `json:"hotelName,omitempty"`
	Price          decimal.Decimal `json:"price"`
	StartDate      types.Date      `json:"startDate"`
	EndDate        types.Date      `json:"endDate"`
	DurationDays   int             `json:"durationDays"`
	AvailableSlots int             `json:"availableSlots"`
	Category       string          `json:"tourType"`
	Description    string          `json:"description,omitempty"`
	MainImageID    *int64          `json:"mainImageId,omitempty"`
	IsBookable     bool            `json:"isBookable"` // вычисляется на дату запроса
}

// ImageResponse изображение
type ImageResponse struct {
	ID      int64  `json:"id"`
	File    string `json:"file"`
	Caption string `json:"caption,omitempty"`
}

// ReviewResponse отзыв
type ReviewResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	TargetType string    `json:"targetType"`
	TargetID   int64     `json:"targetId"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RecentBookingResponse краткие данные бронирования для публичной карточки тура
// Владелец бронирования не раскрывается
type RecentBookingResponse struct {
	ID        int64     `json:"id"`
	Headcount int       `json:"headcount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// TourDetailResponse подробная карточка тура
type TourDetailResponse struct {
	Tour           TourResponse            `json:"tour"`
	Images         []ImageResponse         `json:"images"`
	AverageRating  *decimal.Decimal        `json:"averageRating"` // null, если отзывов нет
	RecentBookings []RecentBookingResponse `json:"recentBookings"`
	Reviews        []ReviewResponse        `json:"reviews"`
}

// HotelDetailResponse подробная карточка отеля
type HotelDetailResponse struct {
	ID            int64            `json:"id"`
	Name          string           `json:"name"`
	Stars         int              `json:"stars"`
	Address       string           `json:"address,omitempty"`
	Description   string           `json:"description,omitempty"`
	CountryID     *int64           `json:"countryId,omitempty"`
	CountryName   string           `json:"countryName,omitempty"`
	CityID        *int64           `json:"cityId,omitempty"`
	CityName      string           `json:"cityName,omitempty"`
	Images        []ImageResponse  `json:"images"`
	AverageRating *decimal.Decimal `json:"averageRating"`
	Reviews       []ReviewResponse `json:"reviews"`
}

// CityResponse город
type CityResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CountryResponse страна со списком городов
type CountryResponse struct {
	ID     int64          `json:"id"`
	Name   string         `json:"name"`
	Cities []CityResponse `json:"cities"`
}

// FromDomainTour конвертирует тур в DTO
func FromDomainTour(t *domain.Tour, today types.Date) TourResponse {
	return TourResponse{
		ID:             t.ID,
		Title:          t.Title,
		CountryID:      t.CountryID,
		CountryName:    t.CountryName,
		CityID:         t.CityID,
		CityName:       t.CityName,
		HotelID:        t.HotelID,
		HotelName:      t.HotelName,
		Price:          t.Price,
		StartDate:      t.StartDate,
		EndDate:        t.EndDate,
		DurationDays:   t.DurationDays,
		AvailableSlots: t.AvailableSlots,
		Category:       string(t.Category),
		Description:    t.Description,
		MainImageID:    t.MainImageID,
		IsBookable:     t.IsBookable(today),
	}
}

// FromDomainTours конвертирует список туров в DTO
func FromDomainTours(tours []*domain.Tour, today types.Date) []TourResponse {
	resp := make([]TourResponse, 0, len(tours))
	for _, t := range tours {
		resp = append(resp, FromDomainTour(t, today))
	}
	return resp
}

// FromDomainImages конвертирует изображения в DTO
func FromDomainImages(images []domain.Image) []ImageResponse {
	resp := make([]ImageResponse, 0, len(images))
	for _, img := range images {
		resp = append(resp, ImageResponse{ID: img.ID, File: img.File, Caption: img.Caption})
	}
	return resp
}

// FromDomainReview конвертирует отзыв в DTO
func FromDomainReview(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		TargetType: string(r.Target.Kind()),
		TargetID:   r.Target.ID(),
		Rating:     r.Rating,
		Text:       r.Text,
		CreatedAt:  r.CreatedAt,
	}
}

// FromDomainReviews конвертирует список отзывов в DTO
func FromDomainReviews(reviews []*domain.Review) []ReviewResponse {
	resp := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		resp = append(resp, FromDomainReview(r))
	}
	return resp
}

// FromDomainRecentBookings конвертирует последние бронирования тура в DTO
func FromDomainRecentBookings(bookings []*domain.Booking) []RecentBookingResponse {
	resp := make([]RecentBookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, RecentBookingResponse{
			ID:        b.ID,
			Headcount: b.Headcount,
			Status:    string(b.Status),
			CreatedAt: b.CreatedAt,
		})
	}
	return resp
}

// FromDomainCountries конвертирует страны с городами в DTO
func FromDomainCountries(countries []domain.Country) []CountryResponse {
	resp := make([]CountryResponse, 0, len(countries))
	for _, c := range countries {
		country := CountryResponse{
			ID:     c.ID,
			Name:   c.Name,
			Cities: make([]CityResponse, 0, len(c.Cities)),
		}
		for _, city := range c.Cities {
			country.Cities = append(country.Cities, CityResponse{ID: city.ID, Name: city.Name})
		}
		resp = append(resp, country)
	}
	return resp
}
