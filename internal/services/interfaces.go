package services

import (
	"context"

	"store-profit-api/internal/models"
)

// Period selects the P&L statement label. The selector only changes the
// human-readable period string; it does not filter orders by date. This
// mirrors the reference behavior and is pinned by tests as a known
// limitation.
type Period string

const (
	PeriodThisMonth Period = "THIS_MONTH"
	PeriodLastMonth Period = "LAST_MONTH"
)

// Valid returns true if the period selector is known
func (p Period) Valid() bool {
	return p == PeriodThisMonth || p == PeriodLastMonth
}

// EconomicsService derives the unit economics of a single order
type EconomicsService interface {
	// GetOrderEconomics returns nil (with no error) when the order is unknown;
	// "no data" is a first-class outcome, not a failure.
	GetOrderEconomics(ctx context.Context, orderID string) (*models.OrderEconomics, error)
}

// PnLService folds order economics, the manual ledger, ad spend and fixed
// costs into a period statement.
type PnLService interface {
	GetPnL(ctx context.Context, period Period) (*models.PnLStatement, error)
}

// CashFlowService partitions order amounts into settled and pending cash
type CashFlowService interface {
	GetCashFlow(ctx context.Context) (*models.CashFlowSummary, error)
}

// InventoryService aggregates product stock into a valuation
type InventoryService interface {
	GetValuation(ctx context.Context) (*models.InventoryValuation, error)
}

// ProductMetricsService attributes order profit to products and channels
type ProductMetricsService interface {
	GetProductMetrics(ctx context.Context) (map[string]*models.ProductMetrics, error)
	GetChannelBreakdown(ctx context.Context) (*models.ChannelBreakdown, error)
}

// DecisionService evaluates the advisory rule chains. Both methods return nil
// when there are no orders, the "insufficient data" state.
type DecisionService interface {
	GetDecision(ctx context.Context) (*models.CEODecision, error)
	GetBriefing(ctx context.Context) (*models.ExecutiveAdvice, error)
}

// RegistryService applies explicit updates to the cost rules and the ledgers
type RegistryService interface {
	UpdateProductCost(ctx context.Context, productID string, req *UpdateCostRequest) error
	UpdatePaymentRule(ctx context.Context, method models.PaymentMethod, req *UpdatePaymentRuleRequest) error
	UpdateShippingRule(ctx context.Context, carrier models.ShippingCarrier, req *UpdateCostRequest) error
	UpdatePackagingMaterial(ctx context.Context, materialID string, req *UpdateCostRequest) error
	UpdatePackagingTemplateQuantity(ctx context.Context, materialID string, req *UpdateQuantityRequest) error
	AddAdSpend(ctx context.Context, req *AddAdSpendRequest) (*models.AdSpend, error)
	AddExpense(ctx context.Context, req *AddExpenseRequest) (*models.ExpenseTransaction, error)
	ToggleFixedCost(ctx context.Context, fixedCostID string) error
}

// ConnectorService models the external store connection and the invoice
// upload entry point. It performs no network I/O.
type ConnectorService interface {
	Connect(ctx context.Context) (*ConnectionStatus, error)
	Disconnect(ctx context.Context) (*ConnectionStatus, error)
	Sync(ctx context.Context) (*ConnectionStatus, error)
	Status(ctx context.Context) (*ConnectionStatus, error)
	SetDemoMode(ctx context.Context, enabled bool) error
	UploadInvoice(ctx context.Context, fileName string, contents []byte) (*models.FixedCost, error)
}

// UpdateCostRequest carries a single monetary value. The Amount type coerces
// malformed input to zero instead of rejecting it.
type UpdateCostRequest struct {
	Amount models.Amount `json:"amount"`
}

// UpdatePaymentRuleRequest carries the fee parameters of a payment rule
type UpdatePaymentRuleRequest struct {
	PercentFee models.Amount `json:"percent_fee"`
	FixedFee   models.Amount `json:"fixed_fee"`
}

// UpdateQuantityRequest carries a packaging template quantity
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// AddAdSpendRequest carries a new ad spend entry
type AddAdSpendRequest struct {
	Platform models.AdPlatform  `json:"platform" validate:"required,oneof=SNAPCHAT TIKTOK INSTAGRAM GOOGLE"`
	Amount   models.Amount      `json:"amount"`
	Type     models.AdSpendType `json:"type" validate:"omitempty,oneof=TOPUP INVOICE"`
	ROAS     *float64           `json:"roas,omitempty"`
}

// AddExpenseRequest carries a new manual ledger entry
type AddExpenseRequest struct {
	Amount      models.Amount      `json:"amount"`
	Type        models.ExpenseType `json:"type" validate:"required,oneof=OPERATING FIXED ASSET"`
	Description string             `json:"description"`
}

// ConnectionStatus reports the external store connection state
type ConnectionStatus struct {
	Connected bool   `json:"connected"`
	LastSync  string `json:"last_sync"`
	DemoMode  bool   `json:"demo_mode"`
}
