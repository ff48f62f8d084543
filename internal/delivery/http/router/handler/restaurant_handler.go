package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RestaurantHandler holds dependencies for restaurant read handlers.
type RestaurantHandler struct {
	uc     usecase.RestaurantUsecase
	logger *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler, injected by Fx.
func NewRestaurantHandler(uc usecase.RestaurantUsecase, logger *slog.Logger) *RestaurantHandler {
	return &RestaurantHandler{uc: uc, logger: logger}
}

// List handles GET /api/restaurants?search=<text>.
func (h *RestaurantHandler) List(c echo.Context) error {
	summaries, err := h.uc.ListRestaurants(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, summaries)
}

// Get handles GET /api/restaurants/:id.
func (h *RestaurantHandler) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidRestaurantID
	}

	summary, err := h.uc.GetRestaurant(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, summary)
}

// ListRatings handles GET /api/restaurants/:id/ratings.
func (h *RestaurantHandler) ListRatings(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidRestaurantID
	}

	ratings, err := h.uc.ListRatings(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, ratings)
}

// parseID parses a numeric path identifier.
func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
