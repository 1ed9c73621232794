package ordercontrollers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcj980/comazon/models"
)

func TestUpdateOrderStatus(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	user := seedUser(t, db, "buyer@example.com")
	p := seedProduct(t, db, "keyboard", 35000, 5)

	order, err := PlaceOrder(db, PlaceOrderRequest{
		UserID: user.ID,
		OrderItems: []OrderItemRequest{
			{ProductID: p.ID, UnitPrice: p.Price, Quantity: 1},
		},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/orders/%d", order.ID),
		bytes.NewBufferString(`{"status":"shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Order
	require.NoError(t, db.First(&got, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderStatusShipped, got.Status)

	// Unknown status value is a validation failure.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/orders/%d", order.ID),
		bytes.NewBufferString(`{"status":"teleported"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderNotFound(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/orders/999",
		bytes.NewBufferString(`{"status":"shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteOrderRemovesItems(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	user := seedUser(t, db, "buyer@example.com")
	p := seedProduct(t, db, "keyboard", 35000, 5)

	order, err := PlaceOrder(db, PlaceOrderRequest{
		UserID: user.ID,
		OrderItems: []OrderItemRequest{
			{ProductID: p.ID, UnitPrice: p.Price, Quantity: 1},
		},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/orders/%d", order.ID), nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	var items int64
	require.NoError(t, db.Model(&models.OrderItem{}).
		Where("order_id = ?", order.ID).Count(&items).Error)
	assert.Zero(t, items)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, fmt.Sprintf("/orders/%d", order.ID), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/orders/%d", order.ID), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrdersPagination(t *testing.T) {
	db := setupTestDB(t)
	r := newTestRouter(db)
	user := seedUser(t, db, "buyer@example.com")
	p := seedProduct(t, db, "keyboard", 35000, 100)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		order, err := PlaceOrder(db, PlaceOrderRequest{
			UserID: user.ID,
			OrderItems: []OrderItemRequest{
				{ProductID: p.ID, UnitPrice: p.Price, Quantity: 1},
			},
		})
		require.NoError(t, err)
		// Pin distinct creation times so the sort key fully orders the set.
		require.NoError(t, db.Model(&models.Order{}).
			Where("id = ?", order.ID).
			Update("created_at", base.Add(time.Duration(i)*time.Minute)).Error)
	}

	fetch := func(query string) []models.Order {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/orders?"+query, nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		var orders []models.Order
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
		return orders
	}

	first := fetch("limit=2&offset=0&order=oldest")
	second := fetch("limit=2&offset=2&order=oldest")
	require.Len(t, first, 2)
	require.Len(t, second, 2)
	assert.Less(t, first[0].ID, first[1].ID)
	assert.Less(t, first[1].ID, second[0].ID)
	assert.Less(t, second[0].ID, second[1].ID)
}
