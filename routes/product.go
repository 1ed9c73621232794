package routes

import (
	"github.com/gin-gonic/gin"
	productcontrollers "github.com/kcj980/comazon/controllers/product"
	"gorm.io/gorm"
)

func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontrollers.GetProducts(db))
		products.POST("", productcontrollers.CreateProduct(db))
		products.GET("/:id", productcontrollers.GetProductByID(db))
		products.PATCH("/:id", productcontrollers.UpdateProduct(db))
		products.DELETE("/:id", productcontrollers.DeleteProduct(db))
	}
}
