package services

import (
	"context"
	"fmt"

	"store-profit-api/internal/models"
	"store-profit-api/internal/store"
)

// decisionService implements the DecisionService interface. It runs two
// independently maintained rule chains: the dashboard decision engine
// (RISK/OPPORTUNITY/STABLE with a what-if simulation) and the executive
// briefing advisor (CRITICAL/WARNING/OPPORTUNITY). They serve different
// screens and are intentionally not unified.
type decisionService struct {
	store *store.Store
}

// NewDecisionService creates a new decision engine
func NewDecisionService(st *store.Store) DecisionService {
	return &decisionService{store: st}
}

// storeSignals are the aggregates the rule chains evaluate. All ratios are
// pre-guarded against zero denominators.
type storeSignals struct {
	totalRevenue      float64
	totalProfit       float64
	totalShippingCost float64
	completedOrders   int
	returnedOrders    int
	orderCount        int

	returnRate    float64 // returned / (completed + returned) * 100
	netMargin     float64 // profit / revenue * 100
	shippingRatio float64 // shipping / revenue * 100
	totalAds      float64

	pnl  *models.PnLStatement
	cash *models.CashFlowSummary
}

func gatherSignals(snap *store.Snapshot) storeSignals {
	sig := storeSignals{orderCount: len(snap.Orders)}

	for i := range snap.Orders {
		order := &snap.Orders[i]
		switch order.Status {
		case models.OrderCompleted:
			sig.completedOrders++
			eco := computeOrderEconomics(snap, order)
			sig.totalRevenue += eco.Revenue
			sig.totalProfit += eco.NetProfit
			sig.totalShippingCost += eco.ShippingCost
		case models.OrderReturned:
			sig.returnedOrders++
		}
	}

	for _, ad := range snap.Ads {
		sig.totalAds += ad.Amount
	}

	sig.returnRate = ratio(float64(sig.returnedOrders), float64(sig.completedOrders+sig.returnedOrders))
	sig.netMargin = ratio(sig.totalProfit, sig.totalRevenue)
	sig.shippingRatio = ratio(sig.totalShippingCost, sig.totalRevenue)

	sig.pnl = computePnL(snap)
	sig.cash = computeCashFlow(snap)

	return sig
}

// decisionRule pairs a predicate with a decision constructor. The chain is
// evaluated top to bottom and the first match wins; no scoring, no
// combination of signals.
type decisionRule struct {
	name    string
	matches func(sig storeSignals) bool
	build   func(sig storeSignals) *models.CEODecision
}

// decisionRules is the dashboard engine's fixed priority order
var decisionRules = []decisionRule{
	{
		name:    "return-rate-risk",
		matches: func(sig storeSignals) bool { return sig.returnRate > 15 },
		build: func(sig storeSignals) *models.CEODecision {
			var avgProfit float64
			if sig.completedOrders > 0 {
				avgProfit = sig.totalProfit / float64(sig.completedOrders)
			}
			potentialGain := float64(sig.returnedOrders) * 0.5 * avgProfit

			return &models.CEODecision{
				Level:  models.LevelRisk,
				Title:  "Returns are draining your profit",
				Reason: fmt.Sprintf("The return rate is %.1f%%, well above the healthy range.", sig.returnRate),
				Action: "Review product quality and how products are described on the storefront.",
				Simulation: models.Simulation{
					Title:           "Impact of cutting returns",
					Description:     "If the return rate dropped by half, this profit would come back.",
					CurrentProfit:   sig.totalProfit,
					ProjectedProfit: sig.totalProfit + potentialGain,
					ActionLabel:     "Review products",
				},
			}
		},
	},
	{
		name:    "low-margin-risk",
		matches: func(sig storeSignals) bool { return sig.totalRevenue > 0 && sig.netMargin < 10 },
		build: func(sig storeSignals) *models.CEODecision {
			return &models.CEODecision{
				Level:  models.LevelRisk,
				Title:  "Net margin is too thin",
				Reason: fmt.Sprintf("The current margin of %.1f%% does not cover growth costs or risk.", sig.netMargin),
				Action: "Cut advertising cost or raise the average basket value.",
				Simulation: models.Simulation{
					Title:           "Profitability correction",
					Description:     "Reaching a 20% margin changes the financial picture completely.",
					CurrentProfit:   sig.totalProfit,
					ProjectedProfit: sig.totalRevenue * 0.20,
					ActionLabel:     "Analyze costs",
				},
			}
		},
	},
	{
		name:    "ad-spend-risk",
		matches: func(sig storeSignals) bool { return sig.totalAds > sig.totalProfit && sig.totalProfit > 0 },
		build: func(sig storeSignals) *models.CEODecision {
			savedAds := sig.totalAds * 0.30
			volumeLoss := sig.totalProfit * 0.10

			return &models.CEODecision{
				Level:  models.LevelRisk,
				Title:  "Advertising cost is too high",
				Reason: "Marketing spend exceeded net profit, which is not sustainable.",
				Action: "Pause the weak campaigns and concentrate budget on the winners.",
				Simulation: models.Simulation{
					Title:           "Advertising efficiency",
					Description:     "Cutting the budget 30% while focusing it can lift net profit.",
					CurrentProfit:   sig.totalProfit,
					ProjectedProfit: sig.totalProfit + savedAds - volumeLoss,
					ActionLabel:     "Manage advertising",
				},
			}
		},
	},
	{
		name:    "shipping-cost-risk",
		matches: func(sig storeSignals) bool { return sig.shippingRatio > 20 },
		build: func(sig storeSignals) *models.CEODecision {
			savings := float64(sig.completedOrders) * 5

			return &models.CEODecision{
				Level:  models.LevelRisk,
				Title:  "Shipping costs are too high",
				Reason: fmt.Sprintf("Shipping consumes %.1f%% of revenue.", sig.shippingRatio),
				Action: "Negotiate carrier rates or revisit the free-shipping policy.",
				Simulation: models.Simulation{
					Title:           "Shipping savings",
					Description:     "Saving 5 per shipment flows straight into profit.",
					CurrentProfit:   sig.totalProfit,
					ProjectedProfit: sig.totalProfit + savings,
					ActionLabel:     "Shipping settings",
				},
			}
		},
	},
	{
		name:    "growth-opportunity",
		matches: func(sig storeSignals) bool { return sig.netMargin > 30 && sig.totalRevenue < 10000 },
		build: func(sig storeSignals) *models.CEODecision {
			return &models.CEODecision{
				Level:  models.LevelOpportunity,
				Title:  "The store is ready to scale",
				Reason: "Margins are excellent and can absorb more ad spend.",
				Action: "Raise the marketing budget to bring in more sales.",
				Simulation: models.Simulation{
					Title:           "Growth projection",
					Description:     "Doubling sales while holding the margin.",
					CurrentProfit:   sig.totalProfit,
					ProjectedProfit: sig.totalProfit * 2,
					ActionLabel:     "Increase budget",
				},
			}
		},
	},
	{
		name:    "stable",
		matches: func(sig storeSignals) bool { return true },
		build: func(sig storeSignals) *models.CEODecision {
			return &models.CEODecision{
				Level:  models.LevelStable,
				Title:  "Performance is stable today",
				Reason: "Financial and operational indicators are in the healthy range.",
				Action: "Watch the inventory and keep the service level up.",
				Simulation: models.Simulation{
					Title:           "Compound growth",
					Description:     "Keeping this pace delivers steady organic growth.",
					CurrentProfit:   sig.totalProfit,
					ProjectedProfit: sig.totalProfit * 1.1,
					ActionLabel:     "Done",
				},
			}
		},
	},
}

// GetDecision evaluates the dashboard rule chain and returns the first match.
// With zero orders there is not enough data and the result is nil.
func (s *decisionService) GetDecision(ctx context.Context) (*models.CEODecision, error) {
	snap := s.store.Snapshot()
	if len(snap.Orders) == 0 {
		return nil, nil
	}

	sig := gatherSignals(snap)
	for _, rule := range decisionRules {
		if rule.matches(sig) {
			return rule.build(sig), nil
		}
	}
	return nil, nil
}

// briefingRule pairs a predicate with an advice constructor for the second
// advisor. Same first-match discipline, different thresholds and categories.
type briefingRule struct {
	name    string
	matches func(sig storeSignals) bool
	build   func(sig storeSignals) *models.ExecutiveAdvice
}

var briefingRules = []briefingRule{
	{
		name: "unsustainable-ad-spend",
		matches: func(sig storeSignals) bool {
			pnl := sig.pnl
			return pnl.MarketingExpenses > pnl.Revenue*0.4 ||
				(pnl.MarketingExpenses > pnl.NetProfit && pnl.NetProfit > 0)
		},
		build: func(sig storeSignals) *models.ExecutiveAdvice {
			pnl := sig.pnl
			return &models.ExecutiveAdvice{
				Level:          models.AdviceCritical,
				Title:          "Advertising is consuming your profit this week",
				Signal:         "Unsustainable ad spend",
				Explanation:    fmt.Sprintf("You spent %.0f on advertising while the remaining net profit is only %.0f.", pnl.MarketingExpenses, pnl.NetProfit),
				Recommendation: "Stop advertising the unprofitable products immediately and concentrate budget on the winners.",
				CTALabel:       "Manage costs and advertising",
				CTAView:        "COSTS",
				Reasons: []string{
					fmt.Sprintf("Advertising eats %.1f%% of total revenue (healthy range is 15-25%%).", ratio(pnl.MarketingExpenses, pnl.Revenue)),
					"Current net profit does not cover growth costs or risk.",
					"Continuing at this rate erodes working capital.",
				},
				Confidence: "high",
			}
		},
	},
	{
		name: "trapped-liquidity",
		matches: func(sig storeSignals) bool {
			return sig.cash.TotalPending > sig.cash.TotalSettled && sig.cash.TotalPending > 1000
		},
		build: func(sig storeSignals) *models.ExecutiveAdvice {
			cash := sig.cash
			return &models.ExecutiveAdvice{
				Level:          models.AdviceWarning,
				Title:          "A lot of cash is stuck with couriers and processors",
				Signal:         "Collected cash shortfall",
				Explanation:    fmt.Sprintf("%.0f has not reached your bank account yet, even though sales are fine.", cash.TotalPending),
				Recommendation: "Contact your account manager at the carrier or the BNPL provider and request the overdue transfers.",
				CTALabel:       "View liquidity details",
				CTAView:        "FINANCE",
				Reasons: []string{
					fmt.Sprintf("Pending amounts represent %.0f%% of your current liquidity.", ratio(cash.TotalPending, cash.TotalSettled+cash.TotalPending)),
					"A delayed transfer can make payroll or restocking difficult.",
				},
				Confidence: "high",
			}
		},
	},
	{
		name: "high-returns",
		matches: func(sig storeSignals) bool {
			// This advisor rates returns against all orders, not just the
			// completed+returned population the dashboard engine uses.
			return ratio(float64(sig.returnedOrders), float64(sig.orderCount)) > 15
		},
		build: func(sig storeSignals) *models.ExecutiveAdvice {
			rate := ratio(float64(sig.returnedOrders), float64(sig.orderCount))
			return &models.ExecutiveAdvice{
				Level:          models.AdviceWarning,
				Title:          "The return rate is far too high",
				Signal:         "Quality or expectation problem",
				Explanation:    fmt.Sprintf("%.1f%% of orders come back, a serious signal about product quality or its description.", rate),
				Recommendation: "Check that product descriptions match reality, or talk to the supplier.",
				CTALabel:       "Review products",
				CTAView:        "PRODUCTS",
				Reasons: []string{
					"Every return costs you double shipping fees plus lost packaging.",
					"Returns turn a profitable order into a net loss.",
				},
				Confidence: "medium",
			}
		},
	},
	{
		name:    "stable-growth",
		matches: func(sig storeSignals) bool { return true },
		build: func(sig storeSignals) *models.ExecutiveAdvice {
			pnl := sig.pnl
			return &models.ExecutiveAdvice{
				Level:          models.AdviceOpportunity,
				Title:          "Performance is stable, focus on basket value",
				Signal:         "Margins holding steady",
				Explanation:    "Profit margins are good and expenses are under control. This is the time to grow.",
				Recommendation: "Raise the average order value by cross-selling complementary products to existing customers.",
				CTALabel:       "Analyze products",
				CTAView:        "PRODUCTS",
				Reasons: []string{
					fmt.Sprintf("Net profit is healthy (%.1f%%) and leaves room to experiment.", ratio(pnl.NetProfit, pnl.Revenue)),
					"Raising basket value is the fastest way to multiply profit without more advertising.",
				},
				Confidence: "medium",
			}
		},
	},
}

// GetBriefing evaluates the executive briefing chain. Nil with zero orders.
func (s *decisionService) GetBriefing(ctx context.Context) (*models.ExecutiveAdvice, error) {
	snap := s.store.Snapshot()
	if len(snap.Orders) == 0 {
		return nil, nil
	}

	sig := gatherSignals(snap)
	for _, rule := range briefingRules {
		if rule.matches(sig) {
			return rule.build(sig), nil
		}
	}
	return nil, nil
}
