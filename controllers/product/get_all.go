package productcontrollers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kcj980/comazon/apperr"
	"github.com/kcj980/comazon/models"
	"gorm.io/gorm"
)

func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		var orderClause string
		switch c.DefaultQuery("order", "newest") {
		case "priceLowest":
			orderClause = "price ASC"
		case "priceHighest":
			orderClause = "price DESC"
		case "oldest":
			orderClause = "created_at ASC"
		default: // newest
			orderClause = "created_at DESC"
		}

		query := db.Model(&models.Product{})
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}

		var products []models.Product
		if err := query.
			Order(orderClause).
			Offset(offset).
			Limit(limit).
			Find(&products).Error; err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
