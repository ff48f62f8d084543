package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	mockUc "bistro/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRestaurantHandler_List(t *testing.T) {
	uc := mockUc.NewMockRestaurantUsecase(t)
	h := NewRestaurantHandler(uc, newDiscardLogger())

	avg := 4.5
	uc.EXPECT().
		ListRestaurants(mock.Anything, "noodle").
		Return([]*entity.RestaurantSummary{
			{ID: 1, Name: "Noodle House", AvgRating: &avg, RatingCount: 12, CreatedAt: time.Now()},
			{ID: 2, Name: "Noodle Corner", RatingCount: 0, CreatedAt: time.Now()},
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/restaurants?search=noodle", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, "Noodle House", body[0]["name"])
	assert.InDelta(t, 4.5, body[0]["avg_rating"], 0.001)
	// An unrated restaurant serializes a null average, not zero.
	assert.Nil(t, body[1]["avg_rating"])
	assert.EqualValues(t, 0, body[1]["rating_count"])
}

func TestRestaurantHandler_List_Empty(t *testing.T) {
	uc := mockUc.NewMockRestaurantUsecase(t)
	h := NewRestaurantHandler(uc, newDiscardLogger())

	uc.EXPECT().
		ListRestaurants(mock.Anything, "").
		Return([]*entity.RestaurantSummary{}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/restaurants", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestRestaurantHandler_Get(t *testing.T) {
	uc := mockUc.NewMockRestaurantUsecase(t)
	h := NewRestaurantHandler(uc, newDiscardLogger())

	avg := 3.7
	uc.EXPECT().
		GetRestaurant(mock.Anything, int64(3)).
		Return(&entity.RestaurantSummary{ID: 3, Name: "Noodle House", AvgRating: &avg, RatingCount: 9}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/restaurants/:id")
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 3, body["id"])
	assert.InDelta(t, 3.7, body["avg_rating"], 0.001)
}

func TestRestaurantHandler_Get_InvalidID(t *testing.T) {
	uc := mockUc.NewMockRestaurantUsecase(t)
	h := NewRestaurantHandler(uc, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRestaurantID)
}

func TestRestaurantHandler_Get_NotFound(t *testing.T) {
	uc := mockUc.NewMockRestaurantUsecase(t)
	h := NewRestaurantHandler(uc, newDiscardLogger())

	uc.EXPECT().
		GetRestaurant(mock.Anything, int64(99)).
		Return(nil, domainerrors.ErrRestaurantNotFound)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("99")

	err := h.Get(c)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestRestaurantHandler_ListRatings(t *testing.T) {
	uc := mockUc.NewMockRestaurantUsecase(t)
	h := NewRestaurantHandler(uc, newDiscardLogger())

	comment := "Great noodles"
	uc.EXPECT().
		ListRatings(mock.Anything, int64(3)).
		Return([]*entity.Rating{
			{ID: 2, RestaurantID: 3, Score: 5, Comment: &comment},
			{ID: 1, RestaurantID: 3, Score: 3},
		}, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	require.NoError(t, h.ListRatings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.EqualValues(t, 5, body[0]["score"])
	assert.Equal(t, "Great noodles", body[0]["comment"])
	assert.Nil(t, body[1]["comment"])
}

func TestRestaurantHandler_ListRatings_InvalidID(t *testing.T) {
	uc := mockUc.NewMockRestaurantUsecase(t)
	h := NewRestaurantHandler(uc, newDiscardLogger())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.ListRatings(c)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRestaurantID)
}
