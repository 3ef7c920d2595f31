package models

import (
	"fmt"
	"time"
)

// OrderStatus represents the fulfilment state of an order
type OrderStatus string

const (
	OrderCompleted OrderStatus = "COMPLETED"
	OrderReturned  OrderStatus = "RETURNED"
	OrderPending   OrderStatus = "PENDING"
	OrderShipped   OrderStatus = "SHIPPED"
)

// Valid returns true if the status is one of the known states
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderCompleted, OrderReturned, OrderPending, OrderShipped:
		return true
	}
	return false
}

// LineItem represents a single product position on an order
type LineItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// Order represents a sales order as received from the connected store.
// Amount is what the customer actually paid; it is never recomputed from
// the line items.
type Order struct {
	ID              string          `json:"id" validate:"required"`
	Amount          float64         `json:"amount" validate:"min=0"`
	Date            time.Time       `json:"date"`
	Status          OrderStatus     `json:"status" validate:"required"`
	CustomerName    string          `json:"customer_name,omitempty"`
	PaymentMethod   PaymentMethod   `json:"payment_method" validate:"required"`
	ShippingCarrier ShippingCarrier `json:"shipping_carrier" validate:"required"`
	Items           []LineItem      `json:"items"`
	IsSettled       bool            `json:"is_settled"`
	SettlementDate  *time.Time      `json:"settlement_date,omitempty"`
}

// Validate validates the order data
func (o *Order) Validate() error {
	if o.ID == "" {
		return fmt.Errorf("order ID is required")
	}

	if !o.Status.Valid() {
		return fmt.Errorf("invalid order status: %s", o.Status)
	}

	if o.Amount < 0 {
		return fmt.Errorf("order amount cannot be negative")
	}

	for i, item := range o.Items {
		if item.ProductID == "" {
			return fmt.Errorf("line item %d: product ID is required", i+1)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("line item %d: quantity must be positive", i+1)
		}
	}

	return nil
}

// IsReturned reports whether the order has been returned by the customer.
// Returned orders are excluded from every financial aggregate.
func (o *Order) IsReturned() bool {
	return o.Status == OrderReturned
}
