package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"store-profit-api/internal/adapters/storage"
	"store-profit-api/internal/models"
	"store-profit-api/internal/store"
)

// connectorAt builds a connector whose clock is pinned to the given time
func connectorAt(st *store.Store, files storage.FileStorage, at time.Time) *connectorService {
	svc := NewConnectorService(st, files, nil).(*connectorService)
	svc.now = func() time.Time { return at }
	return svc
}

// TestConnectorLifecycle verifies connect, sync and disconnect transitions
// and the 12-hour sync stamp format.
func TestConnectorLifecycle(t *testing.T) {
	st := store.New()
	svc := connectorAt(st, storage.NewMockFileStorage(), time.Date(2023, 10, 26, 14, 30, 0, 0, time.UTC))

	status, err := svc.Connect(context.Background())
	if err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if !status.Connected {
		t.Error("Expected connected status after Connect")
	}
	if status.LastSync != "02:30 PM" {
		t.Errorf("Expected last sync '02:30 PM', got '%s'", status.LastSync)
	}
	if len(st.Snapshot().Orders) == 0 {
		t.Error("Expected Connect to load the synced records")
	}

	svc.now = func() time.Time { return time.Date(2023, 10, 26, 15, 15, 0, 0, time.UTC) }
	status, err = svc.Sync(context.Background())
	if err != nil {
		t.Fatalf("Sync failed: %v", err)
	}
	if status.LastSync != "03:15 PM" {
		t.Errorf("Expected last sync '03:15 PM', got '%s'", status.LastSync)
	}

	status, err = svc.Disconnect(context.Background())
	if err != nil {
		t.Fatalf("Disconnect failed: %v", err)
	}
	if status.Connected {
		t.Error("Expected disconnected status after Disconnect")
	}
	if len(st.Snapshot().Orders) == 0 {
		t.Error("Expected records to survive a disconnect")
	}
}

// TestConnectorStatusReportsDemoMode verifies the demo flag round trip
func TestConnectorStatusReportsDemoMode(t *testing.T) {
	st := store.New()
	svc := NewConnectorService(st, storage.NewMockFileStorage(), nil)

	if err := svc.SetDemoMode(context.Background(), true); err != nil {
		t.Fatalf("SetDemoMode failed: %v", err)
	}
	status, err := svc.Status(context.Background())
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if !status.DemoMode {
		t.Error("Expected demo mode on")
	}

	if err := svc.SetDemoMode(context.Background(), false); err != nil {
		t.Fatalf("SetDemoMode failed: %v", err)
	}
	status, _ = svc.Status(context.Background())
	if status.DemoMode {
		t.Error("Expected demo mode off")
	}
}

// TestUploadInvoiceArchivesAndRecords verifies the invoice blob lands in
// storage under the invoices prefix and a zero-amount inactive fixed cost
// is appended.
func TestUploadInvoiceArchivesAndRecords(t *testing.T) {
	st := store.New()
	files := storage.NewMockFileStorage()
	svc := NewConnectorService(st, files, nil)

	cost, err := svc.UploadInvoice(context.Background(), "october.pdf", []byte("%PDF-1.4 fake"))
	if err != nil {
		t.Fatalf("UploadInvoice failed: %v", err)
	}

	if cost.Active {
		t.Error("Expected uploaded invoice cost to start inactive")
	}
	if cost.Amount != 0 {
		t.Errorf("Expected zero placeholder amount, got %v", cost.Amount)
	}
	if cost.Source != models.SourcePlatformInvoice {
		t.Errorf("Expected PLATFORM_INVOICE source, got %s", cost.Source)
	}
	if !strings.Contains(cost.Name, "october.pdf") {
		t.Errorf("Expected file name in cost name, got '%s'", cost.Name)
	}

	archived, err := files.List(context.Background(), "invoices/")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(archived) != 1 {
		t.Fatalf("Expected 1 archived invoice, got %d", len(archived))
	}
	if !strings.HasSuffix(archived[0].Key, "-october.pdf") {
		t.Errorf("Expected key to keep the original file name, got '%s'", archived[0].Key)
	}

	found := false
	for _, fc := range st.Snapshot().FixedCosts {
		if fc.ID == cost.ID {
			found = true
		}
	}
	if !found {
		t.Error("Expected the fixed cost in the snapshot")
	}
}

// TestUploadInvoiceEmptyName verifies the file name guard
func TestUploadInvoiceEmptyName(t *testing.T) {
	svc := NewConnectorService(store.New(), storage.NewMockFileStorage(), nil)

	_, err := svc.UploadInvoice(context.Background(), "", []byte("data"))
	if err == nil || !strings.Contains(err.Error(), "cannot be empty") {
		t.Errorf("Expected empty name error, got %v", err)
	}
}

// TestUploadInvoiceStripsDirectories verifies path components in the upload
// name never reach the storage key.
func TestUploadInvoiceStripsDirectories(t *testing.T) {
	files := storage.NewMockFileStorage()
	svc := NewConnectorService(store.New(), files, nil)

	_, err := svc.UploadInvoice(context.Background(), "../../etc/invoice.pdf", []byte("data"))
	if err != nil {
		t.Fatalf("UploadInvoice failed: %v", err)
	}

	archived, _ := files.List(context.Background(), "invoices/")
	if len(archived) != 1 {
		t.Fatalf("Expected 1 archived invoice, got %d", len(archived))
	}
	if strings.Contains(archived[0].Key, "..") {
		t.Errorf("Expected sanitized key, got '%s'", archived[0].Key)
	}
}
