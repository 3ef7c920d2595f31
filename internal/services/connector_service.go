package services

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"store-profit-api/internal/adapters/storage"
	"store-profit-api/internal/models"
	"store-profit-api/internal/store"
)

// connectorService implements the ConnectorService interface. The connection
// is a simulation: connecting loads the seed records and stamps a sync time;
// nothing is fetched over the network.
type connectorService struct {
	store  *store.Store
	files  storage.FileStorage
	now    func() time.Time
	logger *logrus.Logger
}

// NewConnectorService creates a new store connector
func NewConnectorService(st *store.Store, files storage.FileStorage, logger *logrus.Logger) ConnectorService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &connectorService{
		store:  st,
		files:  files,
		now:    time.Now,
		logger: logger,
	}
}

// Connect marks the platform as connected and loads the synced records
func (s *connectorService) Connect(ctx context.Context) (*ConnectionStatus, error) {
	s.store.Connect(s.now())
	s.logger.Info("store platform connected")
	return s.Status(ctx)
}

// Disconnect clears the connected flag
func (s *connectorService) Disconnect(ctx context.Context) (*ConnectionStatus, error) {
	s.store.Disconnect()
	s.logger.Info("store platform disconnected")
	return s.Status(ctx)
}

// Sync re-stamps the last-sync time
func (s *connectorService) Sync(ctx context.Context) (*ConnectionStatus, error) {
	s.store.Sync(s.now())
	return s.Status(ctx)
}

// Status reports the current connection state
func (s *connectorService) Status(ctx context.Context) (*ConnectionStatus, error) {
	connected, lastSync := s.store.ConnectionStatus()
	return &ConnectionStatus{
		Connected: connected,
		LastSync:  lastSync,
		DemoMode:  s.store.IsDemoMode(),
	}, nil
}

// SetDemoMode toggles the demo dataset
func (s *connectorService) SetDemoMode(ctx context.Context, enabled bool) error {
	s.store.SetDemoMode(enabled)
	return nil
}

// UploadInvoice archives a platform invoice file and records a placeholder
// fixed cost tagged with its source. The file is not parsed; amount stays
// zero until the entry is edited manually.
func (s *connectorService) UploadInvoice(ctx context.Context, fileName string, contents []byte) (*models.FixedCost, error) {
	if fileName == "" {
		return nil, fmt.Errorf("invoice file name cannot be empty")
	}

	key := path.Join("invoices", uuid.New().String()+"-"+path.Base(fileName))
	if err := s.files.Store(ctx, key, contents); err != nil {
		return nil, fmt.Errorf("failed to archive invoice: %w", err)
	}

	cost := models.FixedCost{
		ID:       uuid.New().String(),
		Name:     fmt.Sprintf("Platform invoice: %s", path.Base(fileName)),
		Amount:   0,
		Period:   models.PeriodMonthly,
		Active:   false,
		Category: models.CategorySoftware,
		Source:   models.SourcePlatformInvoice,
	}
	s.store.AddFixedCost(cost)

	s.logger.WithFields(logrus.Fields{
		"key":  key,
		"size": len(contents),
	}).Info("platform invoice archived")

	return &cost, nil
}
