package store

import (
	"time"

	"store-profit-api/internal/models"
)

// Demo dataset. A fixed, reproducible fixture: the onboarding flow and the
// test suite both rely on these exact records.

func demoDate(day int) time.Time {
	return time.Date(2023, time.October, day, 12, 0, 0, 0, time.UTC)
}

// DemoProducts returns the demo product catalog
func DemoProducts() []models.Product {
	created := demoDate(1)
	return []models.Product{
		{ID: "1", Name: "Ultra Smart Watch", SKU: "WT-001", Cost: 120, SellingPrice: 299, Quantity: 45, LowStockThreshold: 10, Category: "Electronics", CreatedAt: created, UpdatedAt: created},
		{ID: "2", Name: "Bluetooth Headset Pro", SKU: "AD-002", Cost: 60, SellingPrice: 149, Quantity: 120, LowStockThreshold: 20, Category: "Electronics", CreatedAt: created, UpdatedAt: created},
		{ID: "3", Name: "iPhone Protection Bundle", SKU: "AC-005", Cost: 15, SellingPrice: 99, Quantity: 8, LowStockThreshold: 15, Category: "Accessories", CreatedAt: created, UpdatedAt: created},
	}
}

// DemoOrders returns the demo order book
func DemoOrders() []models.Order {
	return []models.Order{
		{ID: "#10234", Amount: 299, Date: demoDate(25), Status: models.OrderCompleted, CustomerName: "Ahmed Mohammed", PaymentMethod: models.PaymentMada, ShippingCarrier: models.CarrierAramex, Items: []models.LineItem{{ProductID: "1", Quantity: 1}}, IsSettled: true},
		{ID: "#10235", Amount: 149, Date: demoDate(26), Status: models.OrderCompleted, CustomerName: "Sara Khaled", PaymentMethod: models.PaymentTabby, ShippingCarrier: models.CarrierSMSA, Items: []models.LineItem{{ProductID: "2", Quantity: 1}}, IsSettled: false},
		{ID: "#10236", Amount: 99, Date: demoDate(26), Status: models.OrderShipped, CustomerName: "Fahad Alotaibi", PaymentMethod: models.PaymentCOD, ShippingCarrier: models.CarrierSPL, Items: []models.LineItem{{ProductID: "3", Quantity: 1}}, IsSettled: false},
		{ID: "#10237", Amount: 598, Date: demoDate(24), Status: models.OrderCompleted, CustomerName: "Khaled Alsalem", PaymentMethod: models.PaymentVisa, ShippingCarrier: models.CarrierAramex, Items: []models.LineItem{{ProductID: "1", Quantity: 2}}, IsSettled: true},
		{ID: "#10238", Amount: 149, Date: demoDate(24), Status: models.OrderReturned, CustomerName: "Noura Ali", PaymentMethod: models.PaymentMada, ShippingCarrier: models.CarrierSMSA, Items: []models.LineItem{{ProductID: "2", Quantity: 1}}, IsSettled: true},
	}
}

// DemoFixedCosts returns the demo recurring costs
func DemoFixedCosts() []models.FixedCost {
	return []models.FixedCost{
		{ID: "fc-1", Name: "Staff salaries", Amount: 3500, Period: models.PeriodMonthly, Active: true, Category: models.CategorySalaries, Source: models.SourceManual},
	}
}

// DemoExpenses returns the demo manual ledger
func DemoExpenses() []models.ExpenseTransaction {
	return []models.ExpenseTransaction{
		{ID: "ex-1", Amount: 200, Type: models.ExpenseOperating, Description: "Label printer maintenance", Date: demoDate(10)},
		{ID: "ex-2", Amount: 400, Type: models.ExpenseFixed, Description: "Warehouse electricity bill", Date: demoDate(5)},
	}
}

// DemoAdSpends returns the demo marketing spend
func DemoAdSpends() []models.AdSpend {
	roasSnap := 1.2
	roasTikTok := 0.8
	return []models.AdSpend{
		{ID: "ad-1", Platform: models.PlatformSnapchat, Amount: 1800, Date: demoDate(1), Type: models.AdTopUp, ROAS: &roasSnap},
		{ID: "ad-2", Platform: models.PlatformTikTok, Amount: 500, Date: demoDate(15), Type: models.AdInvoice, ROAS: &roasTikTok},
	}
}

// Initial rule tables. Always present, even with an empty order book, so a
// fresh store renders zero-valued views instead of failing lookups.

func initialPaymentRules() []models.PaymentRule {
	return []models.PaymentRule{
		{Method: models.PaymentMada, Name: "mada", PercentFee: 1.0, FixedFee: 1.0, SettlementDays: 1},
		{Method: models.PaymentVisa, Name: "Visa / Mastercard", PercentFee: 2.2, FixedFee: 1.0, SettlementDays: 1},
		{Method: models.PaymentApplePay, Name: "Apple Pay", PercentFee: 2.2, FixedFee: 1.0, SettlementDays: 1},
		{Method: models.PaymentTabby, Name: "Tabby", PercentFee: 7.0, FixedFee: 0, SettlementDays: 7},
		{Method: models.PaymentTamara, Name: "Tamara", PercentFee: 7.0, FixedFee: 0, SettlementDays: 7},
		{Method: models.PaymentCOD, Name: "Cash on delivery", PercentFee: 0, FixedFee: 15, SettlementDays: 14},
	}
}

func initialShippingRules() []models.ShippingRule {
	return []models.ShippingRule{
		{Carrier: models.CarrierAramex, Name: "Aramex", Cost: 24.0},
		{Carrier: models.CarrierSMSA, Name: "SMSA", Cost: 28.0},
		{Carrier: models.CarrierSPL, Name: "SPL", Cost: 18.0},
		{Carrier: models.CarrierDHL, Name: "DHL Express", Cost: 45.0},
	}
}

func initialPackagingMaterials() []models.PackagingMaterial {
	return []models.PackagingMaterial{
		{ID: "1", Name: "Small shipping carton", CostPerUnit: 2.5},
		{ID: "2", Name: "Poly mailer bag", CostPerUnit: 0.5},
		{ID: "3", Name: "Logo sticker", CostPerUnit: 0.75},
	}
}

func initialPackagingTemplates() []models.PackagingTemplate {
	return []models.PackagingTemplate{
		{ID: "1", Name: "Standard packaging", Items: []models.TemplateItem{
			{MaterialID: "1", Quantity: 1},
			{MaterialID: "3", Quantity: 1},
		}},
	}
}
