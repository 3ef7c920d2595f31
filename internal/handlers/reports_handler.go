package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"store-profit-api/internal/services"
	"store-profit-api/pkg/lambda"
)

// ReportsHandler handles the derived financial view requests
type ReportsHandler struct {
	economicsService      services.EconomicsService
	pnlService            services.PnLService
	cashFlowService       services.CashFlowService
	inventoryService      services.InventoryService
	productMetricsService services.ProductMetricsService
	decisionService       services.DecisionService
}

// NewReportsHandler creates a new reports handler
func NewReportsHandler(
	economicsService services.EconomicsService,
	pnlService services.PnLService,
	cashFlowService services.CashFlowService,
	inventoryService services.InventoryService,
	productMetricsService services.ProductMetricsService,
	decisionService services.DecisionService,
) *ReportsHandler {
	return &ReportsHandler{
		economicsService:      economicsService,
		pnlService:            pnlService,
		cashFlowService:       cashFlowService,
		inventoryService:      inventoryService,
		productMetricsService: productMetricsService,
		decisionService:       decisionService,
	}
}

// @Summary Get order unit economics
// @Description Derive the unit-economics breakdown of a single order
// @Tags reports
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} models.OrderEconomics
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id}/economics [get]
func (h *ReportsHandler) GetOrderEconomics(c *gin.Context) {
	economics, err := h.economicsService.GetOrderEconomics(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid request",
			Message: err.Error(),
		})
		return
	}

	if economics == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "Order not found",
			Message: "no order with the given ID exists",
		})
		return
	}

	c.JSON(http.StatusOK, economics)
}

// @Summary Get profit and loss statement
// @Description Aggregate all non-returned orders, the manual ledger, ad spend and fixed costs into a period statement
// @Tags reports
// @Produce json
// @Param period query string false "Period selector (THIS_MONTH or LAST_MONTH)" default(THIS_MONTH)
// @Success 200 {object} models.PnLStatement
// @Failure 400 {object} ErrorResponse
// @Router /reports/pnl [get]
func (h *ReportsHandler) GetPnL(c *gin.Context) {
	period := services.Period(c.DefaultQuery("period", string(services.PeriodThisMonth)))

	statement, err := h.pnlService.GetPnL(c.Request.Context(), period)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid period",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, statement)
}

// @Summary Get cash flow snapshot
// @Description Partition non-returned order amounts into settled and pending cash
// @Tags reports
// @Produce json
// @Success 200 {object} models.CashFlowSummary
// @Router /reports/cashflow [get]
func (h *ReportsHandler) GetCashFlow(c *gin.Context) {
	summary, err := h.cashFlowService.GetCashFlow(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to compute cash flow",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// @Summary Get inventory valuation
// @Description Aggregate product stock into valuation and low-stock signals
// @Tags reports
// @Produce json
// @Success 200 {object} models.InventoryValuation
// @Router /reports/inventory [get]
func (h *ReportsHandler) GetInventoryValuation(c *gin.Context) {
	valuation, err := h.inventoryService.GetValuation(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to compute inventory valuation",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, valuation)
}

// @Summary Get product profitability metrics
// @Description Attribute order profits to products proportionally to item revenue
// @Tags reports
// @Produce json
// @Success 200 {object} map[string]models.ProductMetrics
// @Router /reports/products [get]
func (h *ReportsHandler) GetProductMetrics(c *gin.Context) {
	metrics, err := h.productMetricsService.GetProductMetrics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to compute product metrics",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// @Summary Get profit by channel
// @Description Group non-returned order profit by payment method and shipping carrier
// @Tags reports
// @Produce json
// @Success 200 {object} models.ChannelBreakdown
// @Router /reports/channels [get]
func (h *ReportsHandler) GetChannelBreakdown(c *gin.Context) {
	breakdown, err := h.productMetricsService.GetChannelBreakdown(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to compute channel breakdown",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// @Summary Get the advisory decision
// @Description Evaluate the dashboard rule chain; first matching rule wins
// @Tags ceo
// @Produce json
// @Success 200 {object} models.CEODecision
// @Success 204 "Insufficient data"
// @Router /ceo/decision [get]
func (h *ReportsHandler) GetDecision(c *gin.Context) {
	decision, err := h.decisionService.GetDecision(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to evaluate decision",
			Message: err.Error(),
		})
		return
	}

	if decision == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, decision)
}

// @Summary Get the executive briefing
// @Description Evaluate the briefing rule chain; first matching rule wins
// @Tags ceo
// @Produce json
// @Success 200 {object} models.ExecutiveAdvice
// @Success 204 "Insufficient data"
// @Router /ceo/briefing [get]
func (h *ReportsHandler) GetBriefing(c *gin.Context) {
	advice, err := h.decisionService.GetBriefing(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "Failed to evaluate briefing",
			Message: err.Error(),
		})
		return
	}

	if advice == nil {
		c.Status(http.StatusNoContent)
		return
	}

	c.JSON(http.StatusOK, advice)
}

// Lambda handler methods for the serverless reports entrypoint

// HandlePnL handles the P&L report for Lambda
func (h *ReportsHandler) HandlePnL(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	period := services.Period(req.QueryParams["period"])
	if period == "" {
		period = services.PeriodThisMonth
	}

	statement, err := h.pnlService.GetPnL(ctx, period)
	if err != nil {
		return lambdaError(http.StatusBadRequest, "Invalid period", err), nil
	}
	return lambdaJSON(http.StatusOK, statement)
}

// HandleCashFlow handles the cash flow report for Lambda
func (h *ReportsHandler) HandleCashFlow(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	summary, err := h.cashFlowService.GetCashFlow(ctx)
	if err != nil {
		return lambdaError(http.StatusInternalServerError, "Failed to compute cash flow", err), nil
	}
	return lambdaJSON(http.StatusOK, summary)
}

// HandleInventory handles the inventory valuation for Lambda
func (h *ReportsHandler) HandleInventory(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	valuation, err := h.inventoryService.GetValuation(ctx)
	if err != nil {
		return lambdaError(http.StatusInternalServerError, "Failed to compute inventory valuation", err), nil
	}
	return lambdaJSON(http.StatusOK, valuation)
}

// HandleDecision handles the advisory decision for Lambda
func (h *ReportsHandler) HandleDecision(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	decision, err := h.decisionService.GetDecision(ctx)
	if err != nil {
		return lambdaError(http.StatusInternalServerError, "Failed to evaluate decision", err), nil
	}
	if decision == nil {
		return &lambda.Response{StatusCode: http.StatusNoContent}, nil
	}
	return lambdaJSON(http.StatusOK, decision)
}

func lambdaJSON(status int, payload interface{}) (*lambda.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return lambdaError(http.StatusInternalServerError, "Failed to marshal response", err), nil
	}
	return &lambda.Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}, nil
}

func lambdaError(status int, message string, err error) *lambda.Response {
	body, _ := json.Marshal(ErrorResponse{Error: message, Message: err.Error()})
	return &lambda.Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       body,
	}
}
