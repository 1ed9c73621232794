package ordercontrollers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kcj980/comazon/apperr"
	"github.com/kcj980/comazon/models"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type OrderItemRequest struct {
	ProductID uint    `json:"productId" binding:"required"`
	UnitPrice float64 `json:"unitPrice" binding:"gte=0"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
}

type PlaceOrderRequest struct {
	UserID     string             `json:"userId" binding:"required"`
	OrderItems []OrderItemRequest `json:"orderItems" binding:"required,min=1,dive"`
}

// -------- Core Logic --------

// PlaceOrder verifies stock for every referenced product, then creates the
// order with its line items and decrements stock as one transaction.
//
// Line items repeating a product id have their quantities summed against a
// single stock check; the alternative of checking each line independently
// would count the same stock twice. The stored line items stay as
// submitted, un-merged.
//
// Each line item's unit price is taken from the request payload, a
// point-in-time capture decoupled from the product's current price.
func PlaceOrder(db *gorm.DB, req PlaceOrderRequest) (*models.Order, error) {
	// Wanted quantity per distinct product id.
	wanted := make(map[uint]int)
	ids := make([]uint, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		if _, seen := wanted[item.ProductID]; !seen {
			ids = append(ids, item.ProductID)
		}
		wanted[item.ProductID] += item.Quantity
	}

	// Stock check before any mutation. A product id that does not resolve
	// cannot satisfy demand, so it fails the same way short stock does.
	var products []models.Product
	if err := db.Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	stocked := make(map[uint]models.Product, len(products))
	for _, p := range products {
		stocked[p.ID] = p
	}
	for _, id := range ids {
		p, ok := stocked[id]
		if !ok {
			return nil, apperr.BusinessRule("insufficient stock: product %d not found", id)
		}
		if p.Stock < wanted[id] {
			return nil, apperr.BusinessRule("insufficient stock for product %q", p.Name)
		}
	}

	order := models.Order{
		UserID: req.UserID,
		Status: models.OrderStatusPending,
	}
	for _, item := range req.OrderItems {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: item.ProductID,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	// Order creation and every decrement commit or roll back together.
	// The decrement re-checks stock under the row lock the UPDATE takes,
	// so a placement racing past the read above still cannot overdraw.
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, id := range ids {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", id, wanted[id]).
				UpdateColumn("stock", gorm.Expr("stock - ?", wanted[id]))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperr.BusinessRule("insufficient stock for product %d", id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handler --------

func PlaceOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PlaceOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperr.Respond(c, apperr.Validation("%s", err.Error()))
			return
		}
		order, err := PlaceOrder(db, req)
		if err != nil {
			apperr.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}
