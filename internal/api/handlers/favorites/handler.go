package favorites

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
	"github.com/m04kA/SMC-TourService/internal/api/middleware"
	favoritesService "github.com/m04kA/SMC-TourService/internal/service/favorites"
)

const (
	msgInvalidUserID    = "некорректный ID пользователя"
	msgInvalidTourID    = "некорректный ID тура"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgForbidden        = "доступ запрещен"
	msgTourNotFound     = "тур не найден"
	msgFavoriteNotFound = "тура нет в избранном"
)

type Handler struct {
	service FavoriteService
	logger  Logger
}

func NewHandler(service FavoriteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Add PUT /api/v1/users/{userId}/favorites/{tourId}
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	requesterID, userID, tourID, ok := h.parseTourRequest(w, r, "PUT /users/{userId}/favorites/{tourId}")
	if !ok {
		return
	}

	if err := h.service.Add(r.Context(), requesterID, userID, tourID); err != nil {
		h.respondError(w, "PUT /users/{userId}/favorites/{tourId}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// Remove DELETE /api/v1/users/{userId}/favorites/{tourId}
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	requesterID, userID, tourID, ok := h.parseTourRequest(w, r, "DELETE /users/{userId}/favorites/{tourId}")
	if !ok {
		return
	}

	if err := h.service.Remove(r.Context(), requesterID, userID, tourID); err != nil {
		h.respondError(w, "DELETE /users/{userId}/favorites/{tourId}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

// List GET /api/v1/users/{userId}/favorites
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const route = "GET /users/{userId}/favorites"

	userID, err := handlers.PathID(r, "userId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	requesterID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.List(r.Context(), requesterID, userID)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result.Favorites)
}

func (h *Handler) parseTourRequest(w http.ResponseWriter, r *http.Request, route string) (requesterID, userID, tourID int64, ok bool) {
	userID, err := handlers.PathID(r, "userId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return 0, 0, 0, false
	}

	tourID, err = handlers.PathID(r, "tourId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTourID)
		return 0, 0, 0, false
	}

	requesterID, ok = middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return 0, 0, 0, false
	}

	return requesterID, userID, tourID, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, favoritesService.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", route)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, favoritesService.ErrTourNotFound):
		handlers.RespondNotFound(w, msgTourNotFound)

	case errors.Is(err, favoritesService.ErrFavoriteNotFound):
		handlers.RespondNotFound(w, msgFavoriteNotFound)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
