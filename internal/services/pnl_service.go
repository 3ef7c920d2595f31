package services

import (
	"context"
	"fmt"
	"time"

	"store-profit-api/internal/models"
	"store-profit-api/internal/store"
)

// pnlService implements the PnLService interface
type pnlService struct {
	store *store.Store
	now   func() time.Time
}

// NewPnLService creates a new P&L aggregator
func NewPnLService(st *store.Store) PnLService {
	return &pnlService{store: st, now: time.Now}
}

// GetPnL builds the profit-and-loss statement over all non-returned orders.
// The period selector only changes the statement label; it does not filter
// orders by date.
func (s *pnlService) GetPnL(ctx context.Context, period Period) (*models.PnLStatement, error) {
	if !period.Valid() {
		return nil, fmt.Errorf("invalid period selector: %s", period)
	}

	snap := s.store.Snapshot()
	stmt := computePnL(snap)
	stmt.Period = s.periodLabel(period)
	return stmt, nil
}

// computePnL aggregates a single snapshot so the totals agree on which orders
// are returned at the instant of calculation.
func computePnL(snap *store.Snapshot) *models.PnLStatement {
	var revenue, cogs, shippingCost, paymentFees, packagingCost float64

	var completedOrders int
	var completedProfit float64

	for i := range snap.Orders {
		order := &snap.Orders[i]
		if order.IsReturned() {
			continue
		}

		eco := computeOrderEconomics(snap, order)
		revenue += eco.Revenue
		cogs += eco.COGS
		shippingCost += eco.ShippingCost
		paymentFees += eco.PaymentFee
		packagingCost += eco.PackagingCost

		if order.Status == models.OrderCompleted {
			completedOrders++
			completedProfit += eco.NetProfit
		}
	}

	// Manual ledger: ASSET purchases are recorded but never expensed here
	var manualOperating, manualFixed float64
	for _, e := range snap.Expenses {
		switch e.Type {
		case models.ExpenseOperating:
			manualOperating += e.Amount
		case models.ExpenseFixed:
			manualFixed += e.Amount
		}
	}

	operatingExpenses := shippingCost + paymentFees + packagingCost + manualOperating

	// Marketing counts every ad spend entry regardless of its type
	var marketingExpenses float64
	for _, ad := range snap.Ads {
		marketingExpenses += ad.Amount
	}

	var recurringFixed float64
	for _, c := range snap.FixedCosts {
		if c.Active {
			recurringFixed += c.Amount
		}
	}
	fixedExpenses := recurringFixed + manualFixed

	grossProfit := revenue - cogs
	netProfit := grossProfit - operatingExpenses - marketingExpenses - fixedExpenses

	var avgOrderProfit float64
	if completedOrders > 0 {
		avgOrderProfit = completedProfit / float64(completedOrders)
	}

	return &models.PnLStatement{
		Revenue:           revenue,
		COGS:              cogs,
		GrossProfit:       grossProfit,
		OperatingExpenses: operatingExpenses,
		ShippingCost:      shippingCost,
		PaymentFees:       paymentFees,
		PackagingCost:     packagingCost,
		MarketingExpenses: marketingExpenses,
		FixedExpenses:     fixedExpenses,
		NetProfit:         netProfit,
		CompletedOrders:   completedOrders,
		AvgOrderProfit:    avgOrderProfit,

		// Previous-period figures use the dashboard's fixed comparison
		// factors; no historical snapshot exists to derive them from.
		Previous: models.PnLComparison{
			Revenue:     revenue * 0.92,
			GrossProfit: grossProfit * 0.90,
			NetProfit:   netProfit * 0.88,
		},
	}
}

// periodLabel renders the display label for the selector. LAST_MONTH labels
// the previous calendar month; neither selector filters records.
func (s *pnlService) periodLabel(period Period) string {
	now := s.now()
	if period == PeriodLastMonth {
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return firstOfMonth.AddDate(0, 0, -1).Format("January 2006")
	}
	return now.Format("January 2006")
}
