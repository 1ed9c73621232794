package usercontrollers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kcj980/comazon/apperr"
	"github.com/kcj980/comazon/models"
	"gorm.io/gorm"
)

func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			apperr.Respond(c, err)
			return
		}

		var orders []models.Order
		if err := db.
			Where("user_id = ?", id).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
