package get_tour_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/api/middleware"
	"github.com/m04kA/SMC-TourService/internal/service/bookings"
)

const (
	msgInvalidTourID = "некорректный ID тура"
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidParams = "некорректные параметры запроса"
	msgTourNotFound  = "тур не найден"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/tours/{tourId}/bookings
// Query params: status, from, to, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tourID, err := handlers.PathID(r, "tourId")
	if err != nil {
		h.logger.Warn("GET /tours/{id}/bookings - Invalid tour ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /tours/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(
		tourID,
		userID,
		query.Get("status"),
		query.Get("from"),
		query.Get("to"),
		query.Get("includeInactive"),
	)
	if err != nil {
		h.logger.Warn("GET /tours/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Сервис сам проверит, что пользователь - сотрудник
	result, err := h.service.GetTourBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /tours/{id}/bookings - Access denied: tour_id=%d, user_id=%d", tourID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, bookings.ErrTourNotFound):
			handlers.RespondNotFound(w, msgTourNotFound)

		default:
			h.logger.Error("GET /tours/{id}/bookings - Failed to get bookings: tour_id=%d, error=%v", tourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /tours/{id}/bookings - Bookings retrieved successfully: tour_id=%d, count=%d",
		tourID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
