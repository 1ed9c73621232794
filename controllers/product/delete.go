package productcontrollers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kcj980/comazon/apperr"
	"github.com/kcj980/comazon/models"
	"gorm.io/gorm"
)

func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res := db.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			apperr.Respond(c, res.Error)
			return
		}
		if res.RowsAffected == 0 {
			apperr.Respond(c, apperr.NotFound("product %s not found", id))
			return
		}
		c.Status(http.StatusNoContent)
	}
}
