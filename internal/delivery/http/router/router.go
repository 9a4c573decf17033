// Package router contains routing setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"pulse/internal/delivery/http/middleware"
	"pulse/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	PostHandler    *handler.PostHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	postHandler    *handler.PostHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		postHandler:    params.PostHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/", r.healthHandler.Check)

	api := e.Group("/api")
	{
		// Account routes; registration and login are public, the
		// listing requires a bearer token.
		api.POST("/users/register", r.userHandler.Register)
		api.POST("/users/login", r.userHandler.Login)
		api.GET("/users", r.userHandler.ListUsers, r.authMiddleware.Authenticate)

		// Post routes; the listing is public, publishing requires a
		// bearer token.
		api.GET("/posts", r.postHandler.ListPosts)
		api.POST("/posts", r.postHandler.CreatePost, r.authMiddleware.Authenticate)
	}
}
