package services

import (
	"context"
	"fmt"

	"store-profit-api/internal/models"
	"store-profit-api/internal/store"
)

// cashFlowService implements the CashFlowService interface
type cashFlowService struct {
	store *store.Store
}

// NewCashFlowService creates a new cash flow analyzer
func NewCashFlowService(st *store.Store) CashFlowService {
	return &cashFlowService{store: st}
}

// GetCashFlow partitions every non-returned order's amount into settled and
// pending cash. The pending breakdown is keyed by source in first-occurrence
// order, not sorted.
func (s *cashFlowService) GetCashFlow(ctx context.Context) (*models.CashFlowSummary, error) {
	return computeCashFlow(s.store.Snapshot()), nil
}

func computeCashFlow(snap *store.Snapshot) *models.CashFlowSummary {
	var totalSettled, totalPending float64
	pendingIndex := make(map[string]int)
	breakdown := []models.PendingSource{}

	for i := range snap.Orders {
		order := &snap.Orders[i]
		if order.IsReturned() {
			continue
		}

		if order.IsSettled {
			totalSettled += order.Amount
			continue
		}

		totalPending += order.Amount
		source := pendingSourceLabel(order)
		if idx, ok := pendingIndex[source]; ok {
			breakdown[idx].Amount += order.Amount
		} else {
			pendingIndex[source] = len(breakdown)
			breakdown = append(breakdown, models.PendingSource{Source: source, Amount: order.Amount})
		}
	}

	return &models.CashFlowSummary{
		TotalSettled:     totalSettled,
		TotalPending:     totalPending,
		PendingBreakdown: breakdown,
	}
}

// pendingSourceLabel names who is holding the money. For COD the cash sits
// with the courier, not a payment processor, so the source is the carrier.
func pendingSourceLabel(order *models.Order) string {
	if order.PaymentMethod == models.PaymentCOD {
		return fmt.Sprintf("COURIER (%s)", order.ShippingCarrier)
	}
	return string(order.PaymentMethod)
}
