package services

import (
	"context"

	"store-profit-api/internal/models"
	"store-profit-api/internal/store"
)

// productMetricsService implements the ProductMetricsService interface
type productMetricsService struct {
	store *store.Store
}

// NewProductMetricsService creates a new product profitability allocator
func NewProductMetricsService(st *store.Store) ProductMetricsService {
	return &productMetricsService{store: st}
}

// GetProductMetrics redistributes each completed order's net profit across
// its line items proportionally to item revenue.
//
// The split is not true product-level cost attribution: packaging and
// shipping are order-level costs, so a product's share carries a slice of
// them.
func (s *productMetricsService) GetProductMetrics(ctx context.Context) (map[string]*models.ProductMetrics, error) {
	snap := s.store.Snapshot()

	metrics := make(map[string]*models.ProductMetrics, len(snap.Products))
	for i := range snap.Products {
		metrics[snap.Products[i].ID] = &models.ProductMetrics{Status: models.ProductBorderline}
	}

	for i := range snap.Orders {
		order := &snap.Orders[i]
		if order.Status != models.OrderCompleted {
			continue
		}

		eco := computeOrderEconomics(snap, order)

		var orderTotalProductRevenue float64
		for _, item := range order.Items {
			if p := snap.FindProduct(item.ProductID); p != nil {
				orderTotalProductRevenue += p.SellingPrice * float64(item.Quantity)
			}
		}

		// Zero product revenue would divide the split by zero; such an order
		// contributes nothing.
		if orderTotalProductRevenue == 0 {
			continue
		}

		for _, item := range order.Items {
			p := snap.FindProduct(item.ProductID)
			if p == nil {
				continue
			}

			itemRevenue := p.SellingPrice * float64(item.Quantity)
			share := itemRevenue / orderTotalProductRevenue

			m := metrics[p.ID]
			m.Revenue += itemRevenue
			m.NetProfit += eco.NetProfit * share
			m.OrdersCount++
		}
	}

	for _, m := range metrics {
		switch {
		case m.NetProfit > 0:
			m.Status = models.ProductProfitable
		case m.NetProfit < 0:
			m.Status = models.ProductLoss
		default:
			m.Status = models.ProductBorderline
		}
		if m.OrdersCount > 0 {
			m.AvgSellingPrice = m.Revenue / float64(m.OrdersCount)
		}
	}

	return metrics, nil
}

// GetChannelBreakdown groups non-returned order revenue and profit by payment
// method and by shipping carrier, in first-occurrence order.
func (s *productMetricsService) GetChannelBreakdown(ctx context.Context) (*models.ChannelBreakdown, error) {
	snap := s.store.Snapshot()

	byPayment := channelAccumulator{}
	byShipping := channelAccumulator{}

	for i := range snap.Orders {
		order := &snap.Orders[i]
		if order.IsReturned() {
			continue
		}

		eco := computeOrderEconomics(snap, order)
		byPayment.add(string(order.PaymentMethod), eco)
		byShipping.add(string(order.ShippingCarrier), eco)
	}

	return &models.ChannelBreakdown{
		ByPayment:  byPayment.entries,
		ByShipping: byShipping.entries,
	}, nil
}

type channelAccumulator struct {
	index   map[string]int
	entries []models.ChannelProfit
}

func (a *channelAccumulator) add(channel string, eco *models.OrderEconomics) {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	idx, ok := a.index[channel]
	if !ok {
		idx = len(a.entries)
		a.index[channel] = idx
		a.entries = append(a.entries, models.ChannelProfit{Channel: channel})
	}
	a.entries[idx].Orders++
	a.entries[idx].Revenue += eco.Revenue
	a.entries[idx].Profit += eco.NetProfit
}
