// Package store holds the application's records behind an explicit state
// container. Reads hand out immutable snapshots; every mutation replaces the
// affected collection wholesale and publishes a fresh snapshot, so a derived
// computation always sees a complete, consistent view of the data.
package store

import (
	"errors"
	"sync"
	"time"

	"store-profit-api/internal/models"
)

// ErrNotFound is returned when a mutation targets an unknown record
var ErrNotFound = errors.New("record not found")

// Snapshot is an immutable view of all records at one instant. Callers must
// not modify the slices; mutators never touch a published snapshot.
type Snapshot struct {
	Orders             []models.Order
	Products           []models.Product
	FixedCosts         []models.FixedCost
	Expenses           []models.ExpenseTransaction
	Ads                []models.AdSpend
	PaymentRules       []models.PaymentRule
	ShippingRules      []models.ShippingRule
	PackagingMaterials []models.PackagingMaterial
	PackagingTemplates []models.PackagingTemplate
}

// FindOrder returns the order with the given ID, or nil
func (s *Snapshot) FindOrder(id string) *models.Order {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return &s.Orders[i]
		}
	}
	return nil
}

// FindProduct returns the product with the given ID, or nil
func (s *Snapshot) FindProduct(id string) *models.Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}

// FindPaymentRule returns the fee rule for a payment method, or nil when the
// registry has no matching rule.
func (s *Snapshot) FindPaymentRule(method models.PaymentMethod) *models.PaymentRule {
	for i := range s.PaymentRules {
		if s.PaymentRules[i].Method == method {
			return &s.PaymentRules[i]
		}
	}
	return nil
}

// FindShippingRule returns the cost rule for a carrier, or nil
func (s *Snapshot) FindShippingRule(carrier models.ShippingCarrier) *models.ShippingRule {
	for i := range s.ShippingRules {
		if s.ShippingRules[i].Carrier == carrier {
			return &s.ShippingRules[i]
		}
	}
	return nil
}

// FindPackagingMaterial returns the material with the given ID, or nil
func (s *Snapshot) FindPackagingMaterial(id string) *models.PackagingMaterial {
	for i := range s.PackagingMaterials {
		if s.PackagingMaterials[i].ID == id {
			return &s.PackagingMaterials[i]
		}
	}
	return nil
}

// DefaultTemplate returns the active packaging template, or nil. Only the
// first template slot is ever consulted.
func (s *Snapshot) DefaultTemplate() *models.PackagingTemplate {
	if len(s.PackagingTemplates) == 0 {
		return nil
	}
	return &s.PackagingTemplates[0]
}

// Store is the single writer over the record collections. The lock guards the
// snapshot pointer swap; readers only ever hold a complete snapshot.
type Store struct {
	mu   sync.RWMutex
	snap *Snapshot

	demoMode  bool
	connected bool
	lastSync  string
}

// New creates an empty store with the initial rule tables loaded
func New() *Store {
	return &Store{
		snap: &Snapshot{
			PaymentRules:       initialPaymentRules(),
			ShippingRules:      initialShippingRules(),
			PackagingMaterials: initialPackagingMaterials(),
			PackagingTemplates: initialPackagingTemplates(),
		},
	}
}

// Snapshot returns the current immutable view of all records
func (st *Store) Snapshot() *Snapshot {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.snap
}

// swap publishes a new snapshot built from the current one by fn
func (st *Store) swap(fn func(old *Snapshot) *Snapshot) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.snap = fn(st.snap)
}

// UpdateProductCost sets the unit cost of a product
func (st *Store) UpdateProductCost(id string, cost float64) error {
	found := false
	st.swap(func(old *Snapshot) *Snapshot {
		next := *old
		next.Products = make([]models.Product, len(old.Products))
		for i, p := range old.Products {
			if p.ID == id {
				p.Cost = cost
				p.UpdatedAt = time.Now()
				found = true
			}
			next.Products[i] = p
		}
		return &next
	})
	if !found {
		return ErrNotFound
	}
	return nil
}

// UpdatePaymentRule sets the percent and fixed fee of a payment rule
func (st *Store) UpdatePaymentRule(method models.PaymentMethod, percent, fixed float64) error {
	found := false
	st.swap(func(old *Snapshot) *Snapshot {
		next := *old
		next.PaymentRules = make([]models.PaymentRule, len(old.PaymentRules))
		for i, r := range old.PaymentRules {
			if r.Method == method {
				r.PercentFee = percent
				r.FixedFee = fixed
				found = true
			}
			next.PaymentRules[i] = r
		}
		return &next
	})
	if !found {
		return ErrNotFound
	}
	return nil
}

// UpdateShippingRule sets the flat cost of a shipping rule
func (st *Store) UpdateShippingRule(carrier models.ShippingCarrier, cost float64) error {
	found := false
	st.swap(func(old *Snapshot) *Snapshot {
		next := *old
		next.ShippingRules = make([]models.ShippingRule, len(old.ShippingRules))
		for i, r := range old.ShippingRules {
			if r.Carrier == carrier {
				r.Cost = cost
				found = true
			}
			next.ShippingRules[i] = r
		}
		return &next
	})
	if !found {
		return ErrNotFound
	}
	return nil
}

// UpdatePackagingMaterial sets the per-unit cost of a packaging material
func (st *Store) UpdatePackagingMaterial(id string, costPerUnit float64) error {
	found := false
	st.swap(func(old *Snapshot) *Snapshot {
		next := *old
		next.PackagingMaterials = make([]models.PackagingMaterial, len(old.PackagingMaterials))
		for i, m := range old.PackagingMaterials {
			if m.ID == id {
				m.CostPerUnit = costPerUnit
				found = true
			}
			next.PackagingMaterials[i] = m
		}
		return &next
	})
	if !found {
		return ErrNotFound
	}
	return nil
}

// UpdatePackagingTemplateQuantity sets the quantity of one material on the
// default template.
func (st *Store) UpdatePackagingTemplateQuantity(materialID string, quantity int) error {
	found := false
	st.swap(func(old *Snapshot) *Snapshot {
		next := *old
		next.PackagingTemplates = make([]models.PackagingTemplate, len(old.PackagingTemplates))
		for i, tpl := range old.PackagingTemplates {
			if i == 0 {
				items := make([]models.TemplateItem, len(tpl.Items))
				for j, item := range tpl.Items {
					if item.MaterialID == materialID {
						item.Quantity = quantity
						found = true
					}
					items[j] = item
				}
				tpl.Items = items
			}
			next.PackagingTemplates[i] = tpl
		}
		return &next
	})
	if !found {
		return ErrNotFound
	}
	return nil
}

// ReplaceOrders swaps the order book wholesale, the way a platform sync
// delivers it.
func (st *Store) ReplaceOrders(orders []models.Order) {
	st.swap(func(old *Snapshot) *Snapshot {
		next := *old
		next.Orders = append([]models.Order(nil), orders...)
		return &next
	})
}

// ReplaceProducts swaps the product catalog wholesale
func (st *Store) ReplaceProducts(products []models.Product) {
	st.swap(func(old *Snapshot) *Snapshot {
		next := *old
		next.Products = append([]models.Product(nil), products...)
		return &next
	})
}

// AddAdSpend appends an ad spend entry
func (st *Store) AddAdSpend(ad models.AdSpend) {
	st.swap(func(old *Snapshot) *Snapshot {
		next := *old
		next.Ads = append(append([]models.AdSpend(nil), old.Ads...), ad)
		return &next
	})
}

// AddExpense appends a manual ledger entry
func (st *Store) AddExpense(expense models.ExpenseTransaction) {
	st.swap(func(old *Snapshot) *Snapshot {
		next := *old
		next.Expenses = append(append([]models.ExpenseTransaction(nil), old.Expenses...), expense)
		return &next
	})
}

// AddFixedCost appends a fixed cost entry
func (st *Store) AddFixedCost(cost models.FixedCost) {
	st.swap(func(old *Snapshot) *Snapshot {
		next := *old
		next.FixedCosts = append(append([]models.FixedCost(nil), old.FixedCosts...), cost)
		return &next
	})
}

// ToggleFixedCost flips the active flag of a fixed cost
func (st *Store) ToggleFixedCost(id string) error {
	found := false
	st.swap(func(old *Snapshot) *Snapshot {
		next := *old
		next.FixedCosts = make([]models.FixedCost, len(old.FixedCosts))
		for i, c := range old.FixedCosts {
			if c.ID == id {
				c.Active = !c.Active
				found = true
			}
			next.FixedCosts[i] = c
		}
		return &next
	})
	if !found {
		return ErrNotFound
	}
	return nil
}

// SetDemoMode loads the demo dataset when enabled and clears all transactional
// records when disabled. Rule tables are always present.
func (st *Store) SetDemoMode(enabled bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.demoMode = enabled

	next := *st.snap
	if enabled {
		next.Products = DemoProducts()
		next.Orders = DemoOrders()
		next.FixedCosts = DemoFixedCosts()
		next.Expenses = DemoExpenses()
		next.Ads = DemoAdSpends()
		st.connected = true
	} else {
		next.Products = nil
		next.Orders = nil
		next.FixedCosts = nil
		next.Expenses = nil
		next.Ads = nil
		st.connected = false
	}
	st.snap = &next
}

// IsDemoMode reports whether the demo dataset is loaded
func (st *Store) IsDemoMode() bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.demoMode
}

// Connect marks the external store as connected, stamps the sync time and
// loads the seed records the connection hands over.
func (st *Store) Connect(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.connected = true
	st.lastSync = now.Format("03:04 PM")

	next := *st.snap
	next.Products = DemoProducts()
	next.Orders = DemoOrders()
	st.snap = &next
}

// Disconnect clears the connected flag. Records already synced stay in place.
func (st *Store) Disconnect() {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.connected = false
}

// Sync re-stamps the last-sync time
func (st *Store) Sync(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.lastSync = now.Format("03:04 PM")
}

// ConnectionStatus returns the connected flag and last-sync timestamp
func (st *Store) ConnectionStatus() (bool, string) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.connected, st.lastSync
}
