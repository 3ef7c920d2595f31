package services

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"store-profit-api/internal/adapters/storage"
	"store-profit-api/internal/store"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	EconomicsService      EconomicsService
	PnLService            PnLService
	CashFlowService       CashFlowService
	InventoryService      InventoryService
	ProductMetricsService ProductMetricsService
	DecisionService       DecisionService
	RegistryService       RegistryService
	ConnectorService      ConnectorService
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer(st *store.Store, files storage.FileStorage, logger *logrus.Logger) (*ServiceContainer, error) {
	if st == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	if files == nil {
		return nil, fmt.Errorf("file storage cannot be nil")
	}

	return &ServiceContainer{
		EconomicsService:      NewEconomicsService(st),
		PnLService:            NewPnLService(st),
		CashFlowService:       NewCashFlowService(st),
		InventoryService:      NewInventoryService(st),
		ProductMetricsService: NewProductMetricsService(st),
		DecisionService:       NewDecisionService(st),
		RegistryService:       NewRegistryService(st),
		ConnectorService:      NewConnectorService(st, files, logger),
	}, nil
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.EconomicsService == nil {
		return fmt.Errorf("economics service is nil")
	}
	if sc.PnLService == nil {
		return fmt.Errorf("pnl service is nil")
	}
	if sc.CashFlowService == nil {
		return fmt.Errorf("cash flow service is nil")
	}
	if sc.InventoryService == nil {
		return fmt.Errorf("inventory service is nil")
	}
	if sc.ProductMetricsService == nil {
		return fmt.Errorf("product metrics service is nil")
	}
	if sc.DecisionService == nil {
		return fmt.Errorf("decision service is nil")
	}
	if sc.RegistryService == nil {
		return fmt.Errorf("registry service is nil")
	}
	if sc.ConnectorService == nil {
		return fmt.Errorf("connector service is nil")
	}
	return nil
}
