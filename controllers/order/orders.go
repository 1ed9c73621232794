package ordercontrollers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kcj980/comazon/apperr"
	"github.com/kcj980/comazon/models"
	"gorm.io/gorm"
)

type PatchOrderRequest struct {
	Status *models.OrderStatus `json:"status" binding:"omitempty,oneof=pending confirmed shipped delivered cancelled"`
}

func GetOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		var orderClause string
		switch c.DefaultQuery("order", "newest") {
		case "oldest":
			orderClause = "created_at ASC"
		default: // newest
			orderClause = "created_at DESC"
		}

		var orders []models.Order
		if err := db.
			Order(orderClause).
			Offset(offset).
			Limit(limit).
			Find(&orders).Error; err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByID loads the order with its line items and attaches the
// derived total, computed at read time.
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.
			Preload("Items").
			First(&order, "id = ?", c.Param("id")).Error; err != nil {
			apperr.Respond(c, err)
			return
		}
		for _, item := range order.Items {
			order.Total += item.UnitPrice * float64(item.Quantity)
		}
		c.JSON(http.StatusOK, order)
	}
}

func UpdateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PatchOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Respond(c, apperr.Validation("%s", err.Error()))
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			apperr.Respond(c, err)
			return
		}

		if req.Status != nil {
			if err := db.Model(&order).Update("status", *req.Status).Error; err != nil {
				apperr.Respond(c, err)
				return
			}
		}
		c.JSON(http.StatusOK, order)
	}
}

func DeleteOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", id).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			res := tx.Delete(&models.Order{}, "id = ?", id)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperr.NotFound("order %s not found", id)
			}
			return nil
		})
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
