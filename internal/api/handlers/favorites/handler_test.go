package favorites

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/api/middleware"
	"github.com/m04kA/SMC-TourService/internal/service/catalog/models"
	favoritesService "github.com/m04kA/SMC-TourService/internal/service/favorites"
)

type stubService struct {
	err   error
	added [][3]int64
}

func (s *stubService) Add(ctx context.Context, requesterID, userID, tourID int64) error {
	s.added = append(s.added, [3]int64{requesterID, userID, tourID})
	return s.err
}

func (s *stubService) Remove(ctx context.Context, requesterID, userID, tourID int64) error {
	return s.err
}

func (s *stubService) List(ctx context.Context, requesterID, userID int64) (*favoritesService.FavoriteListResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &favoritesService.FavoriteListResponse{Favorites: []favoritesService.FavoriteResponse{
		{Tour: models.TourResponse{ID: 3, Title: "Венеция"}, AddedAt: time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)},
	}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, method, path string, userID int64) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/users/{userId}/favorites", h.List).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/users/{userId}/favorites/{tourId}", h.Add).Methods(http.MethodPut)
	router.HandleFunc("/api/v1/users/{userId}/favorites/{tourId}", h.Remove).Methods(http.MethodDelete)

	req := httptest.NewRequest(method, path, nil)
	if userID != 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Add(t *testing.T) {
	svc := &stubService{}
	rec := serve(NewHandler(svc, nopLogger{}), http.MethodPut, "/api/v1/users/7/favorites/3", 7)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.Len(t, svc.added, 1)
	assert.Equal(t, [3]int64{7, 7, 3}, svc.added[0])
}

func TestHandler_List(t *testing.T) {
	rec := serve(NewHandler(&stubService{}, nopLogger{}), http.MethodGet, "/api/v1/users/7/favorites", 7)
	require.Equal(t, http.StatusOK, rec.Code)

	var body []favoritesService.FavoriteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, int64(3), body[0].Tour.ID)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		userID     int64
		err        error
		wantStatus int
	}{
		{"missing user", http.MethodPut, "/api/v1/users/7/favorites/3", 0, nil, http.StatusUnauthorized},
		{"bad tour id", http.MethodPut, "/api/v1/users/7/favorites/abc", 7, nil, http.StatusBadRequest},
		{"foreign list", http.MethodGet, "/api/v1/users/8/favorites", 7, favoritesService.ErrAccessDenied, http.StatusForbidden},
		{"unknown tour", http.MethodPut, "/api/v1/users/7/favorites/3", 7, favoritesService.ErrTourNotFound, http.StatusNotFound},
		{"not in favorites", http.MethodDelete, "/api/v1/users/7/favorites/3", 7, favoritesService.ErrFavoriteNotFound, http.StatusNotFound},
		{"internal", http.MethodDelete, "/api/v1/users/7/favorites/3", 7, favoritesService.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&stubService{err: tt.err}, nopLogger{}), tt.method, tt.path, tt.userID)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
