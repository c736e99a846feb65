package dto

import "time"

type CreateProductRequest struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Stock       int    `json:"stock"`
	MinStock    int    `json:"minStock"`
	Description string `json:"description"`
}

// UpdateProductRequest carries a partial update; nil fields keep the
// current value.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Price       *int64  `json:"price"`
	Stock       *int    `json:"stock"`
	MinStock    *int    `json:"minStock"`
	Description *string `json:"description"`
}

type UpdateStockRequest struct {
	Stock *int `json:"stock"`
}

type ProductResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Price       int64     `json:"price"`
	Stock       int       `json:"stock"`
	MinStock    int       `json:"minStock"`
	Description string    `json:"description"`
	LowStock    bool      `json:"lowStock"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
