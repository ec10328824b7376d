package routes

import (
	coreport "github.com/paymentshop/payments-service/internal/domain/port/core"
	"github.com/paymentshop/payments-service/internal/infrastructure/adapter/api/handler"
	"github.com/paymentshop/payments-service/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	paymentMethodHandler *handler.PaymentMethodHandler,
	indexHandler *handler.IndexHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/", indexHandler.Index)
	router.GET("/health", healthHandler.Health)

	paymentMethods := router.Group("/payment-methods")
	{
		paymentMethods.GET("", paymentMethodHandler.List)
		paymentMethods.POST("", paymentMethodHandler.Create)
		paymentMethods.GET("/:id", paymentMethodHandler.Get)
		paymentMethods.PUT("/:id", paymentMethodHandler.Update)
		paymentMethods.DELETE("/:id", paymentMethodHandler.Delete)
		paymentMethods.POST("/:id/set-default", paymentMethodHandler.SetDefault)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
