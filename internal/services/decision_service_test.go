package services

import (
	"context"
	"testing"

	"store-profit-api/internal/models"
	"store-profit-api/internal/store"
)

// completedOrder builds a completed order with no matching payment or
// shipping rule, so its profit is amount minus COGS minus packaging.
func completedOrder(id string, amount float64, productID string) models.Order {
	return models.Order{
		ID: id, Amount: amount, Status: models.OrderCompleted,
		PaymentMethod: models.PaymentMethod("NONE"), ShippingCarrier: models.CarrierOwnDelivery,
		Items: []models.LineItem{{ProductID: productID, Quantity: 1}},
	}
}

// TestGetDecisionDemoDataset verifies the demo store trips the returns rule.
// The demo data also has ad spend above profit, so this doubles as a priority
// check: the returns rule outranks the advertising rule.
func TestGetDecisionDemoDataset(t *testing.T) {
	svc := NewDecisionService(demoStore())

	decision, err := svc.GetDecision(context.Background())
	if err != nil {
		t.Fatalf("GetDecision failed: %v", err)
	}
	if decision == nil {
		t.Fatal("Expected a decision for the demo store")
	}

	if decision.Level != models.LevelRisk {
		t.Errorf("Expected RISK level, got %s", decision.Level)
	}
	if decision.Title != "Returns are draining your profit" {
		t.Errorf("Expected the returns decision, got '%s'", decision.Title)
	}

	// 1 returned vs 3 completed: half the returns back means 0.5 orders at
	// the average completed profit.
	profit10234 := 299 - 120 - (299*0.01 + 1) - 24 - 3.25
	profit10235 := 149 - 60 - (149 * 0.07) - 28 - 3.25
	profit10237 := 598 - 240 - (598*0.022 + 1) - 24 - 3.25
	totalProfit := profit10234 + profit10235 + profit10237
	expectedProjected := totalProfit + 1*0.5*(totalProfit/3)

	if !almostEqual(decision.Simulation.CurrentProfit, totalProfit) {
		t.Errorf("Expected current profit %v, got %v", totalProfit, decision.Simulation.CurrentProfit)
	}
	if !almostEqual(decision.Simulation.ProjectedProfit, expectedProjected) {
		t.Errorf("Expected projected profit %v, got %v", expectedProjected, decision.Simulation.ProjectedProfit)
	}
}

// TestGetDecisionNoOrders verifies the insufficient-data state
func TestGetDecisionNoOrders(t *testing.T) {
	svc := NewDecisionService(store.New())

	decision, err := svc.GetDecision(context.Background())
	if err != nil {
		t.Fatalf("GetDecision failed: %v", err)
	}
	if decision != nil {
		t.Error("Expected nil decision with zero orders")
	}

	advice, err := svc.GetBriefing(context.Background())
	if err != nil {
		t.Fatalf("GetBriefing failed: %v", err)
	}
	if advice != nil {
		t.Error("Expected nil briefing with zero orders")
	}
}

// TestGetDecisionReturnRateBoundary verifies a return rate of exactly 15% does
// not trip the returns rule; the threshold is strict.
func TestGetDecisionReturnRateBoundary(t *testing.T) {
	st := store.New()
	st.ReplaceProducts([]models.Product{
		{ID: "p", Name: "P", SKU: "P", Cost: 70, SellingPrice: 100},
	})

	// 17 completed + 3 returned = 15% exactly. Margin lands near 24%, no ads,
	// no shipping cost: every other risk rule stays quiet too.
	var orders []models.Order
	for i := 0; i < 17; i++ {
		orders = append(orders, completedOrder(string(rune('a'+i)), 100, "p"))
	}
	for i := 0; i < 3; i++ {
		orders = append(orders, models.Order{
			ID: "ret-" + string(rune('a'+i)), Amount: 100, Status: models.OrderReturned,
			PaymentMethod: models.PaymentMethod("NONE"), ShippingCarrier: models.CarrierOwnDelivery,
		})
	}
	st.ReplaceOrders(orders)

	decision, err := NewDecisionService(st).GetDecision(context.Background())
	if err != nil {
		t.Fatalf("GetDecision failed: %v", err)
	}
	if decision == nil {
		t.Fatal("Expected a decision")
	}
	if decision.Level != models.LevelStable {
		t.Errorf("Expected STABLE at the 15%% boundary, got %s (%s)", decision.Level, decision.Title)
	}

	// The stable simulation projects 10% organic growth
	if !almostEqual(decision.Simulation.ProjectedProfit, decision.Simulation.CurrentProfit*1.1) {
		t.Error("Expected stable projection of 1.1x current profit")
	}
}

// TestGetDecisionLowMargin verifies the thin-margin rule and its 20% target
// projection.
func TestGetDecisionLowMargin(t *testing.T) {
	st := store.New()
	st.ReplaceProducts([]models.Product{
		{ID: "p", Name: "P", SKU: "P", Cost: 92, SellingPrice: 100},
	})
	// Profit per order: 100 - 92 - 3.25 = 4.75, margin 4.75%
	st.ReplaceOrders([]models.Order{completedOrder("#1", 100, "p")})

	decision, err := NewDecisionService(st).GetDecision(context.Background())
	if err != nil {
		t.Fatalf("GetDecision failed: %v", err)
	}
	if decision.Title != "Net margin is too thin" {
		t.Errorf("Expected the margin decision, got '%s'", decision.Title)
	}
	if !almostEqual(decision.Simulation.ProjectedProfit, 100*0.20) {
		t.Errorf("Expected projected profit 20, got %v", decision.Simulation.ProjectedProfit)
	}
}

// TestGetDecisionShippingRule verifies the shipping-cost rule and its
// 5-per-shipment savings projection.
func TestGetDecisionShippingRule(t *testing.T) {
	st := store.New()
	st.ReplaceProducts([]models.Product{
		{ID: "p", Name: "P", SKU: "P", Cost: 40, SellingPrice: 100},
	})
	// Aramex costs 24 per 100 revenue: shipping ratio 24% with margin ~31%...
	// margin = (100-40-24-3.25)/100 = 32.75%, but the shipping rule outranks
	// the growth opportunity.
	st.ReplaceOrders([]models.Order{{
		ID: "#1", Amount: 100, Status: models.OrderCompleted,
		PaymentMethod: models.PaymentMethod("NONE"), ShippingCarrier: models.CarrierAramex,
		Items: []models.LineItem{{ProductID: "p", Quantity: 1}},
	}})

	decision, err := NewDecisionService(st).GetDecision(context.Background())
	if err != nil {
		t.Fatalf("GetDecision failed: %v", err)
	}
	if decision.Title != "Shipping costs are too high" {
		t.Errorf("Expected the shipping decision, got '%s'", decision.Title)
	}
	if !almostEqual(decision.Simulation.ProjectedProfit, decision.Simulation.CurrentProfit+5) {
		t.Error("Expected 5 savings for the single completed shipment")
	}
}

// TestGetDecisionGrowthOpportunity verifies the scale-up rule
func TestGetDecisionGrowthOpportunity(t *testing.T) {
	st := store.New()
	st.ReplaceProducts([]models.Product{
		{ID: "p", Name: "P", SKU: "P", Cost: 50, SellingPrice: 100},
	})
	// Margin = (100-50-3.25)/100 = 46.75%, revenue 100 < 10000
	st.ReplaceOrders([]models.Order{completedOrder("#1", 100, "p")})

	decision, err := NewDecisionService(st).GetDecision(context.Background())
	if err != nil {
		t.Fatalf("GetDecision failed: %v", err)
	}
	if decision.Level != models.LevelOpportunity {
		t.Errorf("Expected OPPORTUNITY level, got %s", decision.Level)
	}
	if !almostEqual(decision.Simulation.ProjectedProfit, decision.Simulation.CurrentProfit*2) {
		t.Error("Expected doubling projection for the growth opportunity")
	}
}

// TestGetBriefingDemoDataset verifies the demo store trips the critical ad
// spend advice: 2300 of ads against 1145 of revenue.
func TestGetBriefingDemoDataset(t *testing.T) {
	svc := NewDecisionService(demoStore())

	advice, err := svc.GetBriefing(context.Background())
	if err != nil {
		t.Fatalf("GetBriefing failed: %v", err)
	}
	if advice == nil {
		t.Fatal("Expected briefing for the demo store")
	}
	if advice.Level != models.AdviceCritical {
		t.Errorf("Expected CRITICAL level, got %s", advice.Level)
	}
	if advice.CTAView != "COSTS" {
		t.Errorf("Expected COSTS CTA view, got %s", advice.CTAView)
	}
	if len(advice.Reasons) == 0 {
		t.Error("Expected supporting reasons")
	}
}

// TestGetBriefingTrappedLiquidity verifies the pending-cash warning
func TestGetBriefingTrappedLiquidity(t *testing.T) {
	st := store.New()
	st.ReplaceOrders([]models.Order{
		{ID: "#1", Amount: 100, Status: models.OrderCompleted, PaymentMethod: models.PaymentMethod("NONE"), ShippingCarrier: models.CarrierOwnDelivery, IsSettled: true},
		{ID: "#2", Amount: 2000, Status: models.OrderCompleted, PaymentMethod: models.PaymentTabby, ShippingCarrier: models.CarrierOwnDelivery},
	})

	advice, err := NewDecisionService(st).GetBriefing(context.Background())
	if err != nil {
		t.Fatalf("GetBriefing failed: %v", err)
	}
	if advice.Level != models.AdviceWarning {
		t.Errorf("Expected WARNING level, got %s", advice.Level)
	}
	if advice.Signal != "Collected cash shortfall" {
		t.Errorf("Expected the liquidity advice, got '%s'", advice.Signal)
	}
}

// TestGetBriefingHighReturns verifies the return-rate warning rates returns
// against ALL orders, not just the completed+returned population.
func TestGetBriefingHighReturns(t *testing.T) {
	st := store.New()
	st.ReplaceOrders([]models.Order{
		{ID: "#1", Amount: 100, Status: models.OrderCompleted, PaymentMethod: models.PaymentMethod("NONE"), ShippingCarrier: models.CarrierOwnDelivery, IsSettled: true},
		{ID: "#2", Amount: 100, Status: models.OrderCompleted, PaymentMethod: models.PaymentMethod("NONE"), ShippingCarrier: models.CarrierOwnDelivery, IsSettled: true},
		{ID: "#3", Amount: 100, Status: models.OrderReturned, PaymentMethod: models.PaymentMethod("NONE"), ShippingCarrier: models.CarrierOwnDelivery},
	})

	advice, err := NewDecisionService(st).GetBriefing(context.Background())
	if err != nil {
		t.Fatalf("GetBriefing failed: %v", err)
	}
	if advice.Signal != "Quality or expectation problem" {
		t.Errorf("Expected the returns advice, got '%s'", advice.Signal)
	}
	if advice.Level != models.AdviceWarning {
		t.Errorf("Expected WARNING level, got %s", advice.Level)
	}
}

// TestGetBriefingFallbackOpportunity verifies the stable-growth fallback
func TestGetBriefingFallbackOpportunity(t *testing.T) {
	st := store.New()
	st.ReplaceProducts([]models.Product{
		{ID: "p", Name: "P", SKU: "P", Cost: 40, SellingPrice: 100},
	})
	orders := []models.Order{completedOrder("#1", 100, "p"), completedOrder("#2", 100, "p")}
	for i := range orders {
		orders[i].IsSettled = true
	}
	st.ReplaceOrders(orders)

	advice, err := NewDecisionService(st).GetBriefing(context.Background())
	if err != nil {
		t.Fatalf("GetBriefing failed: %v", err)
	}
	if advice.Level != models.AdviceOpportunity {
		t.Errorf("Expected OPPORTUNITY level, got %s", advice.Level)
	}
}

// TestGetDecisionIdempotent verifies repeated evaluation over the same
// snapshot yields the same decision.
func TestGetDecisionIdempotent(t *testing.T) {
	svc := NewDecisionService(demoStore())

	first, err := svc.GetDecision(context.Background())
	if err != nil {
		t.Fatalf("GetDecision failed: %v", err)
	}
	second, err := svc.GetDecision(context.Background())
	if err != nil {
		t.Fatalf("GetDecision failed: %v", err)
	}

	if first.Title != second.Title || first.Level != second.Level ||
		!almostEqual(first.Simulation.ProjectedProfit, second.Simulation.ProjectedProfit) {
		t.Error("Expected identical decisions from identical snapshots")
	}
}
