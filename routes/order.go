package routes

import (
	"github.com/gin-gonic/gin"
	ordercontrollers "github.com/kcj980/comazon/controllers/order"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	{
		orders.GET("", ordercontrollers.GetOrders(db))
		orders.POST("", ordercontrollers.PlaceOrderHandler(db))
		orders.GET("/:id", ordercontrollers.GetOrderByID(db))
		orders.PATCH("/:id", ordercontrollers.UpdateOrder(db))
		orders.DELETE("/:id", ordercontrollers.DeleteOrder(db))
	}
}
