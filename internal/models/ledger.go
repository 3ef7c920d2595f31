package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FixedCostPeriod is the recurrence period of a fixed cost
type FixedCostPeriod string

const (
	PeriodMonthly FixedCostPeriod = "MONTHLY"
	PeriodYearly  FixedCostPeriod = "YEARLY"
)

// FixedCostCategory classifies a recurring fixed cost
type FixedCostCategory string

const (
	CategorySalaries FixedCostCategory = "SALARIES"
	CategoryRent     FixedCostCategory = "RENT"
	CategorySoftware FixedCostCategory = "SOFTWARE"
	CategoryOther    FixedCostCategory = "OTHER"
)

// FixedCostSource distinguishes manually entered fixed costs from entries
// produced by an uploaded platform invoice.
type FixedCostSource string

const (
	SourceManual          FixedCostSource = "MANUAL"
	SourcePlatformInvoice FixedCostSource = "PLATFORM_INVOICE"
)

// FixedCost represents a recurring cost such as salaries or rent. It
// contributes to the P&L only while active.
type FixedCost struct {
	ID       string            `json:"id" validate:"required"`
	Name     string            `json:"name" validate:"required"`
	Amount   float64           `json:"amount" validate:"min=0"`
	Period   FixedCostPeriod   `json:"period" validate:"required,oneof=MONTHLY YEARLY"`
	Active   bool              `json:"active"`
	Category FixedCostCategory `json:"category" validate:"required,oneof=SALARIES RENT SOFTWARE OTHER"`
	Source   FixedCostSource   `json:"source"`
}

// ExpenseType classifies a manual ledger entry. ASSET purchases are recorded
// but excluded from P&L expense totals.
type ExpenseType string

const (
	ExpenseOperating ExpenseType = "OPERATING"
	ExpenseFixed     ExpenseType = "FIXED"
	ExpenseAsset     ExpenseType = "ASSET"
)

// ExpenseTransaction represents a manually recorded expense
type ExpenseTransaction struct {
	ID          string      `json:"id" validate:"required"`
	Amount      float64     `json:"amount" validate:"min=0"`
	Type        ExpenseType `json:"type" validate:"required,oneof=OPERATING FIXED ASSET"`
	Description string      `json:"description"`
	Date        time.Time   `json:"date"`
}

// NewExpenseTransaction creates a ledger entry with a generated ID and the
// current timestamp.
func NewExpenseTransaction(amount float64, expenseType ExpenseType, description string) *ExpenseTransaction {
	return &ExpenseTransaction{
		ID:          uuid.New().String(),
		Amount:      amount,
		Type:        expenseType,
		Description: description,
		Date:        time.Now(),
	}
}

// Validate validates the expense data
func (e *ExpenseTransaction) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("expense ID is required")
	}

	switch e.Type {
	case ExpenseOperating, ExpenseFixed, ExpenseAsset:
	default:
		return fmt.Errorf("invalid expense type: %s", e.Type)
	}

	if e.Amount < 0 {
		return fmt.Errorf("expense amount cannot be negative")
	}

	return nil
}

// AdPlatform identifies an advertising platform
type AdPlatform string

const (
	PlatformSnapchat  AdPlatform = "SNAPCHAT"
	PlatformTikTok    AdPlatform = "TIKTOK"
	PlatformInstagram AdPlatform = "INSTAGRAM"
	PlatformGoogle    AdPlatform = "GOOGLE"
)

// AdSpendType distinguishes wallet top-ups from platform invoices. Both count
// as marketing expense.
type AdSpendType string

const (
	AdTopUp   AdSpendType = "TOPUP"
	AdInvoice AdSpendType = "INVOICE"
)

// AdSpend represents money spent on an advertising platform. Always counted
// as marketing expense regardless of type.
type AdSpend struct {
	ID       string      `json:"id" validate:"required"`
	Platform AdPlatform  `json:"platform" validate:"required,oneof=SNAPCHAT TIKTOK INSTAGRAM GOOGLE"`
	Amount   float64     `json:"amount" validate:"min=0"`
	Date     time.Time   `json:"date"`
	Type     AdSpendType `json:"type,omitempty"`
	ROAS     *float64    `json:"roas,omitempty"`
}

// NewAdSpend creates an ad spend entry with a generated ID and the current
// timestamp.
func NewAdSpend(platform AdPlatform, amount float64) *AdSpend {
	return &AdSpend{
		ID:       uuid.New().String(),
		Platform: platform,
		Amount:   amount,
		Date:     time.Now(),
	}
}
