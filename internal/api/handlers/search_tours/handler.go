package search_tours

import (
	"net/http"

	"github.com/m04kA/SMC-TourService/internal/api/handlers"
)

type Handler struct {
	useCase SearchToursUseCase
	logger  Logger
}

func NewHandler(useCase SearchToursUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/tours/search
// Только туры, доступные для бронирования. Некорректные параметры игнорируются
// и возвращаются в поле warnings.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, "GET /tours/search", true)
}

// HandleAll GET /api/v1/admin/tours
// Все туры, включая завершенные и распроданные
func (h *Handler) HandleAll(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, "GET /admin/tours", false)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request, route string, onlyBookable bool) {
	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(r.URL.Query(), onlyBookable))
	if err != nil {
		h.logger.Error("%s - Failed to search tours: %v", route, err)
		handlers.RespondInternalError(w)
		return
	}

	if len(result.Warnings) > 0 {
		h.logger.Warn("%s - %d search parameters ignored", route, len(result.Warnings))
	}

	h.logger.Info("%s - Found %d tours", route, len(result.Tours))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
