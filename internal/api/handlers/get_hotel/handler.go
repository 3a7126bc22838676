package get_hotel

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/service/catalog"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgNotFound       = "отель не найден"
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

// Handle GET /api/v1/hotels/{hotelId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	hotelID, err := handlers.PathID(r, "hotelId")
	if err != nil {
		h.logger.Warn("GET /hotels/{id} - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	hotel, err := h.service.GetHotel(r.Context(), hotelID)
	if err != nil {
		if errors.Is(err, catalog.ErrHotelNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /hotels/{id} - Failed to get hotel: hotel_id=%d, error=%v", hotelID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, hotel)
}
