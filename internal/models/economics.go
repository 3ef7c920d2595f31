package models

// OrderEconomics is the unit-economics breakdown of a single order. It is
// derived on every read and never stored.
type OrderEconomics struct {
	Revenue          float64  `json:"revenue"`
	COGS             float64  `json:"cogs"`
	PaymentFee       float64  `json:"payment_fee"`
	ShippingCost     float64  `json:"shipping_cost"`
	PackagingCost    float64  `json:"packaging_cost"`
	PackagingDetails []string `json:"packaging_details"`
	NetProfit        float64  `json:"net_profit"`
}

// PnLStatement is the profit-and-loss aggregate for a labeled period
type PnLStatement struct {
	Revenue     float64 `json:"revenue"`
	COGS        float64 `json:"cogs"`
	GrossProfit float64 `json:"gross_profit"`

	// Operating breakdown
	OperatingExpenses float64 `json:"operating_expenses"`
	ShippingCost      float64 `json:"shipping_cost"`
	PaymentFees       float64 `json:"payment_fees"`
	PackagingCost     float64 `json:"packaging_cost"`

	MarketingExpenses float64 `json:"marketing_expenses"`
	FixedExpenses     float64 `json:"fixed_expenses"`
	NetProfit         float64 `json:"net_profit"`
	Period            string  `json:"period"`

	CompletedOrders int     `json:"completed_orders"`
	AvgOrderProfit  float64 `json:"avg_order_profit"`

	Previous PnLComparison `json:"previous"`
}

// PnLComparison carries the previous-period figures shown next to the
// statement. The storefront dashboard derives them with fixed factors; they
// are a display aid, not accounting.
type PnLComparison struct {
	Revenue     float64 `json:"revenue"`
	GrossProfit float64 `json:"gross_profit"`
	NetProfit   float64 `json:"net_profit"`
}

// PendingSource is one bucket of the pending-cash breakdown. For COD orders
// the source is the shipping carrier, because the courier physically holds
// the money.
type PendingSource struct {
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
}

// CashFlowSummary partitions non-returned order amounts into money already in
// the bank and money still held by processors or couriers.
type CashFlowSummary struct {
	TotalSettled     float64         `json:"total_settled"`
	TotalPending     float64         `json:"total_pending"`
	PendingBreakdown []PendingSource `json:"pending_breakdown"`
}

// InventoryValuation aggregates the catalog's stock into cost-basis value,
// potential full-retail revenue and a low-stock counter.
type InventoryValuation struct {
	TotalValue       float64 `json:"total_value"`
	PotentialRevenue float64 `json:"potential_revenue"`
	LowStockCount    int     `json:"low_stock_count"`
}

// ProductStatus classifies a product by its accumulated net profit
type ProductStatus string

const (
	ProductProfitable ProductStatus = "PROFITABLE"
	ProductLoss       ProductStatus = "LOSS"
	ProductBorderline ProductStatus = "BORDERLINE"
)

// ProductMetrics is the per-product share of order profits, attributed
// proportionally to item revenue.
type ProductMetrics struct {
	Revenue         float64       `json:"revenue"`
	NetProfit       float64       `json:"net_profit"`
	OrdersCount     int           `json:"orders_count"`
	AvgSellingPrice float64       `json:"avg_selling_price"`
	Status          ProductStatus `json:"status"`
}

// ChannelProfit is the profit contribution of one payment method or carrier
type ChannelProfit struct {
	Channel string  `json:"channel"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

// ChannelBreakdown groups non-returned order profit by payment method and by
// shipping carrier.
type ChannelBreakdown struct {
	ByPayment  []ChannelProfit `json:"by_payment"`
	ByShipping []ChannelProfit `json:"by_shipping"`
}
