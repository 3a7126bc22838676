package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/api/middleware"
	"github.com/m04kA/SMC-TourService/internal/service/bookings"
	"github.com/m04kA/SMC-TourService/internal/service/bookings/models"
)

const (
	route = "PATCH /bookings/{id}/cancel"

	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNotFound         = "бронирование не найдено"
	msgForbidden        = "доступ запрещен"
	msgTourNotFound     = "тур бронирования не найден"
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

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
// Повторная отмена и отмена завершенного бронирования возвращают 200 без изменений.
// В ответе бронирование после отмены, чтобы клиент увидел итоговый статус.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("%s - Invalid booking ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Cancel(r.Context(), bookingID, &models.CancelBookingRequest{UserID: userID}); err != nil {
		h.respondError(w, bookingID, userID, err)
		return
	}

	booking, err := h.service.GetByID(r.Context(), bookingID, userID)
	if err != nil {
		h.respondError(w, bookingID, userID, err)
		return
	}

	h.logger.Info("%s - booking_id=%d, user_id=%d, status=%s", route, bookingID, userID, booking.Status)
	handlers.RespondJSON(w, http.StatusOK, booking)
}

func (h *Handler) respondError(w http.ResponseWriter, bookingID, userID int64, err error) {
	switch {
	case errors.Is(err, bookings.ErrBookingNotFound):
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, bookings.ErrTourNotFound):
		h.logger.Warn("%s - Tour of booking_id=%d is gone", route, bookingID)
		handlers.RespondNotFound(w, msgTourNotFound)

	case errors.Is(err, bookings.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: booking_id=%d, user_id=%d", route, bookingID, userID)
		handlers.RespondForbidden(w, msgForbidden)

	default:
		h.logger.Error("%s - Failed: booking_id=%d, error=%v", route, bookingID, err)
		handlers.RespondInternalError(w)
	}
}
