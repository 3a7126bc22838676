package update_booking_status

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TourService/internal/api/middleware"
	"github.com/m04kA/SMC-TourService/internal/domain"
	"github.com/m04kA/SMC-TourService/internal/service/bookings"
	"github.com/m04kA/SMC-TourService/internal/service/bookings/models"
)

type stubService struct{ err error }

func (s stubService) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	return s.err
}

func (s stubService) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	return &models.BookingResponse{ID: id, Status: "confirmed"}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, bookingID, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/bookings/{bookingId}/status", h.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/status", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), 1))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_StatusCodes(t *testing.T) {
	tests := []struct {
		name       string
		bookingID  string
		err        error
		wantStatus int
	}{
		{"confirmed", "5", nil, http.StatusOK},
		{"not enough slots", "5", fmt.Errorf("%w: tour 1", domain.ErrInsufficientSlots), http.StatusConflict},
		{"invalid transition", "5", fmt.Errorf("%w: cancelled -> confirmed", domain.ErrInvalidTransition), http.StatusConflict},
		{"not staff", "5", bookings.ErrAccessDenied, http.StatusForbidden},
		{"unknown booking", "5", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"bad status", "5", bookings.ErrInvalidInput, http.StatusBadRequest},
		{"bad id", "abc", nil, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(stubService{err: tt.err}, nopLogger{}), tt.bookingID, `{"status":"confirmed"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
