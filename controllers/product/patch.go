package productcontrollers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kcj980/comazon/apperr"
	"github.com/kcj980/comazon/models"
	"gorm.io/gorm"
)

type PatchProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
}

func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PatchProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Respond(c, apperr.Validation("%s", err.Error()))
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
			apperr.Respond(c, err)
			return
		}

		// Partial merge: only supplied fields change.
		updates := map[string]any{}
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.Category != nil {
			updates["category"] = *req.Category
		}
		if req.Price != nil {
			updates["price"] = *req.Price
		}
		if req.Stock != nil {
			updates["stock"] = *req.Stock
		}
		if len(updates) > 0 {
			if err := db.Model(&product).Updates(updates).Error; err != nil {
				apperr.Respond(c, err)
				return
			}
		}
		c.JSON(http.StatusOK, product)
	}
}
