package usercontrollers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kcj980/comazon/apperr"
	"github.com/kcj980/comazon/models"
	"gorm.io/gorm"
)

type ToggleSavedProductRequest struct {
	ProductID uint `json:"productId" binding:"required"`
}

func GetSavedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.
			Preload("SavedProducts").
			First(&user, "id = ?", c.Param("id")).Error; err != nil {
			apperr.Respond(c, err)
			return
		}
		if user.SavedProducts == nil {
			user.SavedProducts = []models.Product{}
		}
		c.JSON(http.StatusOK, user.SavedProducts)
	}
}

// ToggleSavedProduct connects the product to the user's saved set if it is
// absent, disconnects it if it is present, and returns the updated set.
// The membership read and the write are separate statements; concurrent
// toggles of the same pair may interleave.
func ToggleSavedProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ToggleSavedProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Respond(c, apperr.Validation("%s", err.Error()))
			return
		}

		var user models.User
		if err := db.
			Preload("SavedProducts").
			First(&user, "id = ?", c.Param("id")).Error; err != nil {
			apperr.Respond(c, err)
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", req.ProductID).Error; err != nil {
			apperr.Respond(c, err)
			return
		}

		saved := false
		for _, p := range user.SavedProducts {
			if p.ID == product.ID {
				saved = true
				break
			}
		}

		assoc := db.Model(&user).Association("SavedProducts")
		if saved {
			if err := assoc.Delete(&product); err != nil {
				apperr.Respond(c, err)
				return
			}
		} else {
			if err := assoc.Append(&product); err != nil {
				apperr.Respond(c, err)
				return
			}
		}

		var updated []models.Product
		if err := db.Model(&user).Association("SavedProducts").Find(&updated); err != nil {
			apperr.Respond(c, err)
			return
		}
		if updated == nil {
			updated = []models.Product{}
		}
		c.JSON(http.StatusOK, updated)
	}
}
