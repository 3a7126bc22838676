package get_featured_tours

import (
	"github.com/m04kA/SMC-TourService/internal/service/catalog/models"
	"github.com/m04kA/SMC-TourService/internal/service/ranking"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

// FeaturedTourResponse популярный тур
type FeaturedTourResponse struct {
	models.TourResponse
	BookingCount int `json:"bookingCount"`
}

// FromFeatured конвертирует результат ранжирования в HTTP response
func FromFeatured(featured []ranking.FeaturedTour, today types.Date) []FeaturedTourResponse {
	resp := make([]FeaturedTourResponse, 0, len(featured))
	for _, f := range featured {
		resp = append(resp, FeaturedTourResponse{
			TourResponse: models.FromDomainTour(f.Tour, today),
			BookingCount: f.BookingCount,
		})
	}
	return resp
}
