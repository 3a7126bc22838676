package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/api/middleware"
	"github.com/m04kA/SMC-TourService/internal/domain"
	createBooking "github.com/m04kA/SMC-TourService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные бронирования"
	msgTourNotFound       = "тур не найден"
	msgUserNotFound       = "пользователь не найден"
	msgTourExpired        = "тур уже завершился"
	msgNotEnoughSlots     = "недостаточно свободных мест"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, tour_id=%d, headcount=%d",
				userID, req.TourID, req.Headcount)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrTourNotFound):
			h.logger.Warn("POST /bookings - Tour not found: tour_id=%d", req.TourID)
			handlers.RespondNotFound(w, msgTourNotFound)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrTourExpired):
			h.logger.Warn("POST /bookings - Tour expired: tour_id=%d", req.TourID)
			handlers.RespondConflict(w, msgTourExpired)

		case errors.Is(err, domain.ErrInsufficientSlots):
			h.logger.Warn("POST /bookings - Not enough slots: tour_id=%d, headcount=%d", req.TourID, req.Headcount)
			handlers.RespondConflict(w, msgNotEnoughSlots)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, tour_id=%d, error=%v",
				userID, req.TourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, tour_id=%d",
		result.ID, userID, req.TourID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
