package productcontrollers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kcj980/comazon/apperr"
	"github.com/kcj980/comazon/models"
	"gorm.io/gorm"
)

func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
