package routes

import (
	"github.com/gin-gonic/gin"
	usercontrollers "github.com/kcj980/comazon/controllers/user"
	"gorm.io/gorm"
)

func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	users := r.Group("/users")
	{
		users.GET("", usercontrollers.GetUsers(db))
		users.POST("", usercontrollers.CreateUser(db))
		users.GET("/:id", usercontrollers.GetUser(db))
		users.PATCH("/:id", usercontrollers.UpdateUser(db))
		users.DELETE("/:id", usercontrollers.DeleteUser(db))

		users.GET("/:id/saved-products", usercontrollers.GetSavedProducts(db))
		users.POST("/:id/saved-products", usercontrollers.ToggleSavedProduct(db))
		users.GET("/:id/orders", usercontrollers.GetUserOrders(db))
	}
}
