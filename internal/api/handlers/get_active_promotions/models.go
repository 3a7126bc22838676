package get_active_promotions

import (
	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

// PromotionResponse действующая акция
type PromotionResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	StartDate   types.Date `json:"startDate"`
	EndDate     types.Date `json:"endDate"`
	TourIDs     []int64    `json:"tourIds"`
	CountryIDs  []int64    `json:"countryIds"`
}

// FromDomainPromotions конвертирует акции в HTTP response
func FromDomainPromotions(promotions []*domain.Promotion) []PromotionResponse {
	resp := make([]PromotionResponse, 0, len(promotions))
	for _, p := range promotions {
		item := PromotionResponse{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			StartDate:   p.StartDate,
			EndDate:     p.EndDate,
			TourIDs:     p.TourIDs,
			CountryIDs:  p.CountryIDs,
		}
		if item.TourIDs == nil {
			item.TourIDs = []int64{}
		}
		if item.CountryIDs == nil {
			item.CountryIDs = []int64{}
		}
		resp = append(resp, item)
	}
	return resp
}
