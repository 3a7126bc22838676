package search_tours

import (
	"net/url"

	"github.com/m04kA/SMC-TourService/internal/service/catalog/models"
	searchTours "github.com/m04kA/SMC-TourService/internal/usecase/search_tours"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

// WarningResponse проигнорированный параметр поиска
type WarningResponse struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

// SearchResponse HTTP response model
type SearchResponse struct {
	Tours    []models.TourResponse `json:"tours"`
	Total    int                   `json:"total"`
	Today    types.Date            `json:"today"`
	Warnings []WarningResponse     `json:"warnings,omitempty"`
}

// ToUseCaseRequest собирает запрос из query string
// Query params: q, country, city, start_date, end_date, min_price, max_price, tour_type
func ToUseCaseRequest(query url.Values, onlyBookable bool) *searchTours.Request {
	return &searchTours.Request{
		Query:        query.Get("q"),
		CountryID:    query.Get("country"),
		CityID:       query.Get("city"),
		StartDate:    query.Get("start_date"),
		EndDate:      query.Get("end_date"),
		MinPrice:     query.Get("min_price"),
		MaxPrice:     query.Get("max_price"),
		Category:     query.Get("tour_type"),
		OnlyBookable: onlyBookable,
	}
}

// FromUseCaseResponse конвертирует результат поиска в HTTP response
func FromUseCaseResponse(resp *searchTours.Response) *SearchResponse {
	out := &SearchResponse{
		Tours: models.FromDomainTours(resp.Tours, resp.Today),
		Total: len(resp.Tours),
		Today: resp.Today,
	}
	for _, w := range resp.Warnings {
		out.Warnings = append(out.Warnings, WarningResponse{Field: w.Field, Value: w.Value, Reason: w.Reason})
	}
	return out
}
