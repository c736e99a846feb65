package domain

import "time"

type Product struct {
	ID          uint
	Name        string
	Price       int64 // minor units
	Stock       int
	MinStock    int // alert threshold
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStock reports whether the product is below its alert threshold.
func (p Product) LowStock() bool {
	return p.Stock < p.MinStock
}
