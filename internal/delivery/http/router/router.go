// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bistro/internal/delivery/http/middleware"
	"bistro/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler     *handler.HealthHandler
	AuthHandler       *handler.AuthHandler
	RestaurantHandler *handler.RestaurantHandler
	RatingHandler     *handler.RatingHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler     *handler.HealthHandler
	authHandler       *handler.AuthHandler
	restaurantHandler *handler.RestaurantHandler
	ratingHandler     *handler.RatingHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:     params.HealthHandler,
		authHandler:       params.AuthHandler,
		restaurantHandler: params.RestaurantHandler,
		ratingHandler:     params.RatingHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.Check)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.GET("/google", r.authHandler.GoogleLogin)
		authGroup.GET("/google/callback", r.authHandler.GoogleCallback)
		authGroup.GET("/user", r.authHandler.CurrentUser, r.authMiddleware.Authenticate)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
	}

	// Restaurant catalog is public
	restaurantGroup := api.Group("/restaurants")
	{
		restaurantGroup.GET("", r.restaurantHandler.List)
		restaurantGroup.GET("/:id", r.restaurantHandler.Get)
		restaurantGroup.GET("/:id/ratings", r.restaurantHandler.ListRatings)

		// Submitting a rating requires a logged-in user
		restaurantGroup.POST("/:id/rating", r.ratingHandler.Add, r.authMiddleware.Authenticate)
	}

	api.DELETE("/ratings/:id", r.ratingHandler.Delete, r.authMiddleware.Authenticate)
}
