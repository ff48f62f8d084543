package handler

import (
	"log/slog"
	"net/http"

	"bistro/internal/delivery/http/middleware"
	"bistro/internal/delivery/http/response"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RatingHandler holds dependencies for rating write handlers.
type RatingHandler struct {
	uc     usecase.RatingUsecase
	logger *slog.Logger
}

// NewRatingHandler is the constructor for RatingHandler, injected by Fx.
func NewRatingHandler(uc usecase.RatingUsecase, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{uc: uc, logger: logger}
}

type addRatingRequest struct {
	Score   int     `json:"score" validate:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

type addRatingResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	RatingID        int64  `json:"rating_id"`
	RestaurantStats any    `json:"restaurant_stats"`
}

// Add handles POST /api/restaurants/:id/rating.
func (h *RatingHandler) Add(c echo.Context) error {
	restaurantID, err := parseID(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidRestaurantID
	}

	var req addRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid rating input")
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrInvalidScore
	}

	// An empty comment is stored as NULL, same as an absent one.
	comment := req.Comment
	if comment != nil && *comment == "" {
		comment = nil
	}

	input := &usecase.AddRatingInput{
		RestaurantID: restaurantID,
		Score:        req.Score,
		Comment:      comment,
	}
	if user := middleware.UserFromContext(c); user != nil {
		input.UserID = &user.ID
	}

	output, err := h.uc.AddRating(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, addRatingResponse{
		Success:         true,
		Message:         "Rating added successfully",
		RatingID:        output.RatingID,
		RestaurantStats: output.Stats,
	})
}

// Delete handles DELETE /api/ratings/:id.
func (h *RatingHandler) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return domainerrors.ErrInvalidRatingID
	}

	if err := h.uc.DeleteRating(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, response.Ack{
		Success: true,
		Message: "Rating deleted successfully",
	})
}
