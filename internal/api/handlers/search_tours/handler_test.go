package search_tours

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourService/internal/domain"
	searchTours "github.com/m04kA/SMC-TourService/internal/usecase/search_tours"
	"github.com/m04kA/SMC-TourService/pkg/types"
)

type spyUseCase struct {
	got  *searchTours.Request
	resp *searchTours.Response
	err  error
}

func (s *spyUseCase) Execute(ctx context.Context, req *searchTours.Request) (*searchTours.Response, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	today := types.MustParseDate("2026-10-19")
	uc := &spyUseCase{resp: &searchTours.Response{
		Tours: []*domain.Tour{{
			ID:             2,
			Title:          "Неаполь",
			Price:          decimal.NewFromInt(1100),
			StartDate:      types.MustParseDate("2026-11-01"),
			EndDate:        types.MustParseDate("2026-11-07"),
			AvailableSlots: 3,
			Category:       domain.CategoryBeach,
		}},
		Warnings: []searchTours.ValidationError{{Field: "min_price", Value: "abc", Reason: "must be a decimal number"}},
		Today:    today,
	}}
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tours/search?q=нап&country=1&min_price=abc&tour_type=all", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "нап", uc.got.Query)
	assert.Equal(t, "1", uc.got.CountryID)
	assert.Equal(t, "abc", uc.got.MinPrice)
	assert.Equal(t, "all", uc.got.Category)
	assert.True(t, uc.got.OnlyBookable)

	var body struct {
		Tours []struct {
			ID         int64  `json:"id"`
			Price      string `json:"price"`
			TourType   string `json:"tourType"`
			IsBookable bool   `json:"isBookable"`
		} `json:"tours"`
		Total    int    `json:"total"`
		Today    string `json:"today"`
		Warnings []struct {
			Field string `json:"field"`
		} `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Tours, 1)
	assert.Equal(t, int64(2), body.Tours[0].ID)
	assert.Equal(t, "1100", body.Tours[0].Price)
	assert.Equal(t, "beach", body.Tours[0].TourType)
	assert.True(t, body.Tours[0].IsBookable)
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, "2026-10-19", body.Today)
	require.Len(t, body.Warnings, 1)
	assert.Equal(t, "min_price", body.Warnings[0].Field)
}

func TestHandler_HandleAll(t *testing.T) {
	uc := &spyUseCase{resp: &searchTours.Response{Today: types.MustParseDate("2026-10-19")}}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.HandleAll(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/tours", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, uc.got.OnlyBookable)
	assert.Contains(t, rec.Body.String(), `"tours":[]`)
}

func TestHandler_InternalError(t *testing.T) {
	uc := &spyUseCase{err: searchTours.ErrInternal}
	h := NewHandler(uc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tours/search", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
