// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"outside/internal/delivery/api/middleware"
	"outside/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler            *handler.AuthHandler
	UserHandler            *handler.UserHandler
	EventHandler           *handler.EventHandler
	LocationHandler        *handler.LocationHandler
	TicketAllotmentHandler *handler.TicketAllotmentHandler
	AuthMiddleware         *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler            *handler.AuthHandler
	userHandler            *handler.UserHandler
	eventHandler           *handler.EventHandler
	locationHandler        *handler.LocationHandler
	ticketAllotmentHandler *handler.TicketAllotmentHandler
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:            params.AuthHandler,
		userHandler:            params.UserHandler,
		eventHandler:           params.EventHandler,
		locationHandler:        params.LocationHandler,
		ticketAllotmentHandler: params.TicketAllotmentHandler,
		authMiddleware:         params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticated := r.authMiddleware.Authenticate

	e.GET("/health", handler.HealthCheck)

	// Account entry points
	e.POST("/signup", r.authHandler.Signup)
	e.POST("/signin", r.authHandler.Signin)
	e.POST("/logout", r.authHandler.Logout, authenticated)

	usersGroup := e.Group("/users", authenticated)
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.GET("/current", r.userHandler.GetCurrentUser)
		usersGroup.PUT("/current", r.userHandler.UpdateCurrentUser)
		usersGroup.DELETE("/current", r.userHandler.DeleteCurrentUser)
		usersGroup.GET("/:id", r.userHandler.GetUser)
	}

	// Event reads are public; every mutation requires a token and the
	// services check ownership.
	eventsGroup := e.Group("/events")
	{
		eventsGroup.GET("", r.eventHandler.ListEvents)
		eventsGroup.GET("/:id", r.eventHandler.GetEvent)
		eventsGroup.GET("/:id/qr", r.eventHandler.GetEventQRCode)
		eventsGroup.POST("", r.eventHandler.CreateEvent, authenticated)
		eventsGroup.PUT("/:id", r.eventHandler.UpdateEvent, authenticated)
		eventsGroup.DELETE("/:id", r.eventHandler.DeleteEvent, authenticated)

		eventsGroup.GET("/:id/location", r.locationHandler.GetLocation, authenticated)
		eventsGroup.POST("/:id/location", r.locationHandler.CreateLocation, authenticated)
		eventsGroup.PUT("/:id/location", r.locationHandler.UpdateLocation, authenticated)

		eventsGroup.GET("/:id/ticket_allotments", r.ticketAllotmentHandler.ListAllotments)
		eventsGroup.GET("/:id/ticket_allotments/:allotmentId", r.ticketAllotmentHandler.GetAllotment)
		eventsGroup.POST("/:id/ticket_allotments", r.ticketAllotmentHandler.CreateAllotment, authenticated)
		eventsGroup.PUT("/:id/ticket_allotments/:allotmentId", r.ticketAllotmentHandler.UpdateAllotment, authenticated)
		eventsGroup.DELETE("/:id/ticket_allotments/:allotmentId", r.ticketAllotmentHandler.DeleteAllotment, authenticated)
	}
}
