package get_featured_tours

import (
	"net/http"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/domain"
)

type Handler struct {
	service      RankingService
	defaultLimit int
	logger       Logger
}

func NewHandler(service RankingService, defaultLimit int, logger Logger) *Handler {
	if defaultLimit <= 0 {
		defaultLimit = domain.DefaultFeaturedLimit
	}
	return &Handler{
		service:      service,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// Handle GET /api/v1/tours/featured?limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := handlers.QueryLimit(r, h.defaultLimit, domain.MaxListLimit)

	featured, err := h.service.FeaturedTours(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /tours/featured - Failed to get featured tours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /tours/featured - Returned %d tours (limit=%d)", len(featured), limit)
	handlers.RespondJSON(w, http.StatusOK, FromFeatured(featured, h.service.Today()))
}
