// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"identity/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	VerificationHandler *handler.VerificationHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	verificationHandler *handler.VerificationHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		verificationHandler: params.VerificationHandler,
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
	}

	// Verification token routes. The :token segment carries the encoded value
	// from the emailed link.
	tokenGroup := e.Group("/verification/tokens")
	{
		tokenGroup.POST("/lost-password", r.verificationHandler.SendLostPasswordToken)
		tokenGroup.POST("/resend", r.verificationHandler.ResendEmailVerificationToken)
		tokenGroup.POST("/:token/verify", r.verificationHandler.VerifyToken)
		tokenGroup.POST("/:token/password", r.verificationHandler.ResetPassword)
	}
}
