package models

// DecisionLevel is the severity of a store-CEO decision
type DecisionLevel string

const (
	LevelRisk        DecisionLevel = "RISK"
	LevelOpportunity DecisionLevel = "OPPORTUNITY"
	LevelStable      DecisionLevel = "STABLE"
)

// Simulation is the what-if payload attached to a decision
type Simulation struct {
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	CurrentProfit   float64 `json:"current_profit"`
	ProjectedProfit float64 `json:"projected_profit"`
	ActionLabel     string  `json:"action_label"`
}

// CEODecision is the single advisory decision selected by the dashboard
// decision engine.
type CEODecision struct {
	Level      DecisionLevel `json:"level"`
	Title      string        `json:"title"`
	Reason     string        `json:"reason"`
	Action     string        `json:"action"`
	Simulation Simulation    `json:"simulation"`
}

// AdviceLevel is the severity of the executive briefing advisor
type AdviceLevel string

const (
	AdviceCritical    AdviceLevel = "CRITICAL"
	AdviceWarning     AdviceLevel = "WARNING"
	AdviceOpportunity AdviceLevel = "OPPORTUNITY"
)

// ExecutiveAdvice is the daily briefing produced by the second advisor. It is
// an independent rule chain from CEODecision; the two serve different screens
// with different tone and detail.
type ExecutiveAdvice struct {
	Level          AdviceLevel `json:"level"`
	Title          string      `json:"title"`
	Signal         string      `json:"signal"`
	Explanation    string      `json:"explanation"`
	Recommendation string      `json:"recommendation"`
	CTALabel       string      `json:"cta_label"`
	CTAView        string      `json:"cta_view"`
	Reasons        []string    `json:"reasons"`
	Confidence     string      `json:"confidence"`
}
