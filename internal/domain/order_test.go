package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOrder_Creation(t *testing.T) {
	createdAt := time.Now()

	order := Order{
		ID:           1,
		CustomerName: "Alice",
		Items: []OrderItem{
			{OrderID: 1, ProductID: 2, Name: "Mouse", Quantity: 2, Price: 2500},
		},
		TotalAmount: 5000,
		Status:      OrderStatusPending,
		CreatedAt:   createdAt,
	}

	assert.Equal(t, uint(1), order.ID)
	assert.Equal(t, "Alice", order.CustomerName)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, int64(5000), order.TotalAmount)
	assert.Equal(t, OrderStatusPending, order.Status)
	assert.Equal(t, createdAt, order.CreatedAt)
}

func TestOrderStatus_Constants(t *testing.T) {
	assert.Equal(t, OrderStatus("Pending"), OrderStatusPending)
	assert.Equal(t, OrderStatus("Approved"), OrderStatusApproved)
	assert.Equal(t, OrderStatus("Rejected"), OrderStatusRejected)
	assert.Equal(t, OrderStatus("Packed"), OrderStatusPacked)
	assert.Equal(t, OrderStatus("Shipped"), OrderStatusShipped)
}

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range allStatuses {
		assert.True(t, s.Valid(), "%s should be valid", s)
	}
	assert.False(t, OrderStatus("Cancelled").Valid())
	assert.False(t, OrderStatus("").Valid())
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, OrderStatusRejected.Terminal())
	assert.True(t, OrderStatusShipped.Terminal())
	assert.False(t, OrderStatusPending.Terminal())
	assert.False(t, OrderStatusApproved.Terminal())
	assert.False(t, OrderStatusPacked.Terminal())
}

func TestTotalOf(t *testing.T) {
	items := []OrderItem{
		{ProductID: 1, Name: "Mouse", Quantity: 2, Price: 2500},
		{ProductID: 2, Name: "Keyboard", Quantity: 1, Price: 4500},
	}

	assert.Equal(t, int64(9500), TotalOf(items))
	assert.Equal(t, int64(0), TotalOf(nil))
}
