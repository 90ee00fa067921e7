// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"warung/internal/delivery/http/middleware"
	"warung/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler          *handler.UserHandler
	MenuHandler          *handler.MenuHandler
	OrderHandler         *handler.OrderHandler
	ParticipationHandler *handler.ParticipationHandler
	PaymentHandler       *handler.PaymentHandler
	AuthMiddleware       *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler          *handler.UserHandler
	menuHandler          *handler.MenuHandler
	orderHandler         *handler.OrderHandler
	participationHandler *handler.ParticipationHandler
	paymentHandler       *handler.PaymentHandler
	authMiddleware       *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:          params.UserHandler,
		menuHandler:          params.MenuHandler,
		orderHandler:         params.OrderHandler,
		participationHandler: params.ParticipationHandler,
		paymentHandler:       params.PaymentHandler,
		authMiddleware:       params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
	}

	// Everything below requires a valid access token. Role and ownership
	// checks live in the use cases.
	api := e.Group("", r.authMiddleware.Authenticate)

	api.GET("/me", r.userHandler.GetMe)

	userGroup := api.Group("/users")
	{
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.POST("", r.userHandler.CreateUser)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.PUT("/:id/role", r.userHandler.UpdateUserRole)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser)
		userGroup.GET("/:id/items", r.participationHandler.ListUserItems)
		userGroup.GET("/:id/payments", r.paymentHandler.ListUserPayments)
	}

	menuGroup := api.Group("/menu")
	{
		menuGroup.GET("", r.menuHandler.ListMenuItems)
		menuGroup.POST("", r.menuHandler.CreateMenuItem)
		menuGroup.POST("/import", r.menuHandler.BulkImport)
		menuGroup.DELETE("", r.menuHandler.DeleteAll)
		menuGroup.GET("/:id", r.menuHandler.GetMenuItem)
		menuGroup.PATCH("/:id", r.menuHandler.UpdateMenuItem)
		menuGroup.DELETE("/:id", r.menuHandler.DeleteMenuItem)
	}

	orderGroup := api.Group("/orders")
	{
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.POST("", r.orderHandler.CreateOrder)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.DELETE("/:id", r.orderHandler.DeleteOrder)
		orderGroup.PUT("/:id/status", r.orderHandler.SetStatus)
		orderGroup.GET("/:id/summary", r.orderHandler.GetOrderSummary)
		orderGroup.GET("/:id/qr", r.orderHandler.GetJoinQR)

		orderGroup.GET("/:id/items", r.participationHandler.ListOrderItems)
		orderGroup.POST("/:id/items", r.participationHandler.AddItem)
		orderGroup.POST("/:id/join", r.participationHandler.JoinOrder)

		orderGroup.GET("/:id/payments", r.paymentHandler.ListOrderPayments)
		orderGroup.GET("/:id/payments/:userID", r.paymentHandler.GetPayment)
		orderGroup.PUT("/:id/payment", r.paymentHandler.UpsertPayment)
	}

	itemGroup := api.Group("/items")
	{
		itemGroup.PATCH("/:id", r.participationHandler.UpdateItem)
		itemGroup.DELETE("/:id", r.participationHandler.RemoveItem)
	}

	paymentGroup := api.Group("/payments")
	{
		paymentGroup.DELETE("/:id", r.paymentHandler.DeletePayment)
	}
}
