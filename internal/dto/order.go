package dto

import "time"

type CreateOrderRequest struct {
	CustomerName string            `json:"customerName"`
	Items        []CreateOrderItem `json:"items"`
}

type CreateOrderItem struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type OrderResponse struct {
	ID           uint                `json:"id"`
	CustomerName string              `json:"customerName"`
	Items        []OrderItemResponse `json:"items"`
	TotalAmount  int64               `json:"totalAmount"`
	Status       string              `json:"status"`
	CreatedAt    time.Time           `json:"createdAt"`
}

type OrderItemResponse struct {
	ProductID uint   `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}
