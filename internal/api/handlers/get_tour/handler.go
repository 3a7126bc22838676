package get_tour

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/service/catalog"
)

const (
	msgInvalidTourID = "некорректный ID тура"
	msgNotFound      = "тур не найден"
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

// Handle GET /api/v1/tours/{tourId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tourID, err := handlers.PathID(r, "tourId")
	if err != nil {
		h.logger.Warn("GET /tours/{id} - Invalid tour ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	tour, err := h.service.GetTour(r.Context(), tourID)
	if err != nil {
		if errors.Is(err, catalog.ErrTourNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /tours/{id} - Failed to get tour: tour_id=%d, error=%v", tourID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, tour)
}
