package routes

import (
	"log"

	_ "serviceos/docs" // swagger generated docs
	"serviceos/internal/adapter/http/handlers"
	"serviceos/internal/adapter/http/middleware"
	"serviceos/internal/adapter/persistence"
	"serviceos/internal/infrastructure/config"
	"serviceos/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg := config.Load()

	backend, err := persistence.NewBackend(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize persistence backend: %v", err)
	}
	defer backend.Close()

	router := NewRouter(cfg, backend)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

// NewRouter wires handlers and middleware for the selected backend.
// The auth and subscription middlewares only exist in remote mode; the
// local backend has a single implicit owner and no account system.
func NewRouter(cfg *config.Config, backend *persistence.Backend) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	orderUseCase := usecase.NewOrderUseCase(backend.Orders, cfg.StrictOrderValidation)
	authUseCase := usecase.NewAuthUseCase(backend.Auth)
	gate := usecase.NewSubscriptionGate(backend.Auth)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	dashboardHandler := handlers.NewDashboardHandler(orderUseCase)
	receiptHandler := handlers.NewReceiptHandler(orderUseCase, cfg.CompanyName)
	exportHandler := handlers.NewExportHandler(orderUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	protected := v1.Group("")
	if backend.Remote {
		protected.Use(middleware.RequireAuth(authUseCase))
		protected.Use(middleware.RequireSubscription(gate, middleware.CheckoutLinks{
			Monthly: cfg.CheckoutLinkMonthly,
			Annual:  cfg.CheckoutLinkAnnual,
		}))
	}
	addOrderRoutes(protected, orderHandler, receiptHandler, exportHandler)
	addDashboardRoutes(protected, dashboardHandler)

	return router
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(middleware.RequestID())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
