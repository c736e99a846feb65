package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "Pending"
	OrderStatusApproved OrderStatus = "Approved"
	OrderStatusRejected OrderStatus = "Rejected"
	OrderStatusPacked   OrderStatus = "Packed"
	OrderStatusShipped  OrderStatus = "Shipped"
)

var orderStatuses = map[OrderStatus]struct{}{
	OrderStatusPending:  {},
	OrderStatusApproved: {},
	OrderStatusRejected: {},
	OrderStatusPacked:   {},
	OrderStatusShipped:  {},
}

func (s OrderStatus) Valid() bool {
	_, ok := orderStatuses[s]
	return ok
}

// Terminal statuses admit no further transitions except by an admin.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusRejected || s == OrderStatusShipped
}

// OrderItem carries the product name and price as they were when the order
// was created. Later edits or deletion of the product never touch them.
type OrderItem struct {
	ID        uint
	OrderID   uint
	ProductID uint
	Name      string
	Quantity  int
	Price     int64 // minor units
}

type Order struct {
	ID           uint
	CustomerName string
	Items        []OrderItem
	TotalAmount  int64 // minor units
	Status       OrderStatus
	CreatedAt    time.Time
}

// TotalOf sums quantity × price over the given items in minor units.
func TotalOf(items []OrderItem) int64 {
	var total int64
	for _, it := range items {
		total += int64(it.Quantity) * it.Price
	}
	return total
}
