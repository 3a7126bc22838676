package create_review

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/api/middleware"
	"github.com/m04kA/SMC-TourService/internal/service/reviews"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidReview      = "оценка должна быть от 1 до 5, а отзыв - относиться либо к туру, либо к отелю"
	msgTargetNotFound     = "тур или отель не найден"
	msgUserNotFound       = "пользователь не найден"
)

type Handler struct {
	service ReviewService
	logger  Logger
}

func NewHandler(service ReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reviews - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	review, err := h.service.Submit(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidReview)

		case errors.Is(err, reviews.ErrTargetNotFound):
			handlers.RespondNotFound(w, msgTargetNotFound)

		case errors.Is(err, reviews.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("POST /reviews - Failed to submit review: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review created: review_id=%d, user_id=%d", review.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, review)
}
