package routes

import (
	"serviceos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders    = "/orders"
	PathDashboard = "/dashboard"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler, receiptHandler *handlers.ReceiptHandler, exportHandler *handlers.ExportHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("", orderHandler.ListOrders)
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/export", exportHandler.ExportOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id", orderHandler.UpdateOrder)
		orders.DELETE("/:id", orderHandler.DeleteOrder)
		orders.GET("/:id/receipt", receiptHandler.GetReceipt)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, dashboardHandler *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("/stats", dashboardHandler.GetStats)
	}
}
