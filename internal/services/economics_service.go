package services

import (
	"context"
	"fmt"

	"store-profit-api/internal/models"
	"store-profit-api/internal/store"
)

// economicsService implements the EconomicsService interface
type economicsService struct {
	store *store.Store
}

// NewEconomicsService creates a new order economics calculator
func NewEconomicsService(st *store.Store) EconomicsService {
	return &economicsService{store: st}
}

// GetOrderEconomics derives the unit economics of one order from the current
// snapshot. Unknown order IDs yield (nil, nil).
func (s *economicsService) GetOrderEconomics(ctx context.Context, orderID string) (*models.OrderEconomics, error) {
	if orderID == "" {
		return nil, fmt.Errorf("order ID cannot be empty")
	}

	snap := s.store.Snapshot()
	order := snap.FindOrder(orderID)
	if order == nil {
		return nil, nil
	}

	return computeOrderEconomics(snap, order), nil
}

// computeOrderEconomics is the leaf computation every aggregate builds on.
// It is a pure function of the snapshot: no caching, no side effects.
//
// Cost attribution policy:
//   - revenue is the order amount verbatim, never recomputed from line items
//   - line items referencing an unknown product contribute zero to COGS
//   - an unmatched payment or shipping rule charges zero for that component
//   - packaging is the default template applied to every order, regardless
//     of the order's actual contents
func computeOrderEconomics(snap *store.Snapshot, order *models.Order) *models.OrderEconomics {
	revenue := order.Amount

	var cogs float64
	for _, item := range order.Items {
		if p := snap.FindProduct(item.ProductID); p != nil {
			cogs += p.Cost * float64(item.Quantity)
		}
	}

	var paymentFee float64
	if rule := snap.FindPaymentRule(order.PaymentMethod); rule != nil {
		paymentFee = rule.Fee(revenue)
	}

	var shippingCost float64
	if rule := snap.FindShippingRule(order.ShippingCarrier); rule != nil {
		shippingCost = rule.Cost
	}

	var packagingCost float64
	packagingDetails := []string{}
	if tpl := snap.DefaultTemplate(); tpl != nil {
		for _, item := range tpl.Items {
			if mat := snap.FindPackagingMaterial(item.MaterialID); mat != nil {
				packagingCost += mat.CostPerUnit * float64(item.Quantity)
				packagingDetails = append(packagingDetails, fmt.Sprintf("%s (%dx)", mat.Name, item.Quantity))
			}
		}
	}

	return &models.OrderEconomics{
		Revenue:          revenue,
		COGS:             cogs,
		PaymentFee:       paymentFee,
		ShippingCost:     shippingCost,
		PackagingCost:    packagingCost,
		PackagingDetails: packagingDetails,
		NetProfit:        revenue - cogs - paymentFee - shippingCost - packagingCost,
	}
}

// ratio returns numerator/denominator*100, or zero when the denominator is
// zero. Every percentage in the derivation pipeline goes through this guard.
func ratio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator * 100
}
