package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product represents a product in the catalog
type Product struct {
	ID                string    `json:"id" validate:"required"`
	Name              string    `json:"name" validate:"required,min=1,max=255"`
	SKU               string    `json:"sku" validate:"required"`
	Cost              float64   `json:"cost" validate:"min=0"`
	SellingPrice      float64   `json:"selling_price" validate:"min=0"`
	Quantity          int       `json:"quantity" validate:"min=0"`
	LowStockThreshold int       `json:"low_stock_threshold" validate:"min=0"`
	Category          string    `json:"category"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewProduct creates a new product with generated ID and timestamps
func NewProduct(name, sku string, cost, sellingPrice float64) *Product {
	now := time.Now()
	return &Product{
		ID:           uuid.New().String(),
		Name:         name,
		SKU:          sku,
		Cost:         cost,
		SellingPrice: sellingPrice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Validate validates the product data
func (p *Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product ID is required")
	}

	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("product name is required")
	}

	if len(p.Name) > 255 {
		return fmt.Errorf("product name cannot exceed 255 characters")
	}

	if p.Cost < 0 {
		return fmt.Errorf("product cost cannot be negative")
	}

	if p.SellingPrice < 0 {
		return fmt.Errorf("selling price cannot be negative")
	}

	if p.Quantity < 0 {
		return fmt.Errorf("stock quantity cannot be negative")
	}

	return nil
}

// IsLowStock reports whether the product is at or below its low-stock
// threshold. The boundary is inclusive.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.LowStockThreshold
}

// StockValue returns the cost-basis value of the product's current stock
func (p *Product) StockValue() float64 {
	return p.Cost * float64(p.Quantity)
}

// RetailValue returns the full-retail value of the product's current stock
func (p *Product) RetailValue() float64 {
	return p.SellingPrice * float64(p.Quantity)
}

// UpdateTimestamp updates the UpdatedAt timestamp
func (p *Product) UpdateTimestamp() {
	p.UpdatedAt = time.Now()
}
