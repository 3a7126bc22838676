package get_countries

import (
	"net/http"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/countries
// Справочник для формы поиска: страны с городами
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	countries, err := h.service.ListCountries(r.Context())
	if err != nil {
		h.logger.Error("GET /countries - Failed to list countries: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, countries)
}
