package get_active_promotions

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
		defaultLimit = domain.DefaultPromotionsLimit
	}
	return &Handler{
		service:      service,
		defaultLimit: defaultLimit,
		logger:       logger,
	}
}

// Handle GET /api/v1/promotions/active?limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit := handlers.QueryLimit(r, h.defaultLimit, domain.MaxListLimit)

	promotions, err := h.service.ActivePromotions(r.Context(), limit)
	if err != nil {
		h.logger.Error("GET /promotions/active - Failed to get promotions: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /promotions/active - Returned %d promotions (limit=%d)", len(promotions), limit)
	handlers.RespondJSON(w, http.StatusOK, FromDomainPromotions(promotions))
}
