package services

import (
	"context"

	"store-profit-api/internal/models"
	"store-profit-api/internal/store"
)

// inventoryService implements the InventoryService interface
type inventoryService struct {
	store *store.Store
}

// NewInventoryService creates a new inventory valuator
func NewInventoryService(st *store.Store) InventoryService {
	return &inventoryService{store: st}
}

// GetValuation aggregates the catalog into cost-basis value, full-retail
// potential revenue and a count of products at or below their low-stock
// threshold.
func (s *inventoryService) GetValuation(ctx context.Context) (*models.InventoryValuation, error) {
	snap := s.store.Snapshot()

	valuation := &models.InventoryValuation{}
	for i := range snap.Products {
		p := &snap.Products[i]
		valuation.TotalValue += p.StockValue()
		valuation.PotentialRevenue += p.RetailValue()
		if p.IsLowStock() {
			valuation.LowStockCount++
		}
	}

	return valuation, nil
}
