// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"danyowa/internal/delivery/api/middleware"
	"danyowa/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SubscriptionHandler *handler.SubscriptionHandler
	NotificationHandler *handler.NotificationHandler
	CronHandler         *handler.CronHandler
	CronAuthMiddleware  *middleware.CronAuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	subscriptionHandler *handler.SubscriptionHandler
	notificationHandler *handler.NotificationHandler
	cronHandler         *handler.CronHandler
	cronAuthMiddleware  *middleware.CronAuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		subscriptionHandler: params.SubscriptionHandler,
		notificationHandler: params.NotificationHandler,
		cronHandler:         params.CronHandler,
		cronAuthMiddleware:  params.CronAuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	subscribeGroup := api.Group("/subscribe")
	{
		subscribeGroup.POST("", r.subscriptionHandler.Subscribe)
		// The listing exposes every user's push keys and schedules; only the operator credential may read it.
		subscribeGroup.GET("", r.subscriptionHandler.ListSubscriptions, r.cronAuthMiddleware.Authenticate)
		subscribeGroup.DELETE("", r.subscriptionHandler.Unsubscribe)
	}

	api.POST("/send-notification", r.notificationHandler.SendNotification)

	// Triggered roughly once per minute by an external scheduler.
	cronGroup := api.Group("/cron")
	cronGroup.Use(r.cronAuthMiddleware.Authenticate)
	{
		cronGroup.GET("/check-schedules", r.cronHandler.CheckSchedules)
		cronGroup.POST("/check-schedules", r.cronHandler.CheckSchedules)
	}
}
