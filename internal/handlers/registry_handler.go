package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"store-profit-api/internal/models"
	"store-profit-api/internal/services"
)

// RegistryHandler handles the cost-rule and ledger mutation requests
type RegistryHandler struct {
	registryService services.RegistryService
}

// NewRegistryHandler creates a new registry handler
func NewRegistryHandler(registryService services.RegistryService) *RegistryHandler {
	return &RegistryHandler{registryService: registryService}
}

// respondMutation maps a mutation error to the right status code
func respondMutation(c *gin.Context, err error, failure string) {
	if err == nil {
		c.Status(http.StatusNoContent)
		return
	}

	status := http.StatusInternalServerError
	switch {
	case isNotFoundError(err):
		status = http.StatusNotFound
	case isValidationError(err):
		status = http.StatusBadRequest
	}
	c.JSON(status, ErrorResponse{Error: failure, Message: err.Error()})
}

// @Summary Update a product's unit cost
// @Tags registry
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body services.UpdateCostRequest true "New cost"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /products/{id}/cost [put]
func (h *RegistryHandler) UpdateProductCost(c *gin.Context) {
	var req services.UpdateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Message: err.Error()})
		return
	}

	err := h.registryService.UpdateProductCost(c.Request.Context(), c.Param("id"), &req)
	respondMutation(c, err, "Failed to update product cost")
}

// @Summary Update a payment rule's fees
// @Tags registry
// @Accept json
// @Produce json
// @Param method path string true "Payment method"
// @Param request body services.UpdatePaymentRuleRequest true "New fees"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /rules/payment/{method} [put]
func (h *RegistryHandler) UpdatePaymentRule(c *gin.Context) {
	var req services.UpdatePaymentRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Message: err.Error()})
		return
	}

	method := models.PaymentMethod(c.Param("method"))
	err := h.registryService.UpdatePaymentRule(c.Request.Context(), method, &req)
	respondMutation(c, err, "Failed to update payment rule")
}

// @Summary Update a shipping rule's cost
// @Tags registry
// @Accept json
// @Produce json
// @Param carrier path string true "Shipping carrier"
// @Param request body services.UpdateCostRequest true "New cost"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /rules/shipping/{carrier} [put]
func (h *RegistryHandler) UpdateShippingRule(c *gin.Context) {
	var req services.UpdateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Message: err.Error()})
		return
	}

	carrier := models.ShippingCarrier(c.Param("carrier"))
	err := h.registryService.UpdateShippingRule(c.Request.Context(), carrier, &req)
	respondMutation(c, err, "Failed to update shipping rule")
}

// @Summary Update a packaging material's unit cost
// @Tags registry
// @Accept json
// @Produce json
// @Param id path string true "Material ID"
// @Param request body services.UpdateCostRequest true "New cost per unit"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /packaging/materials/{id} [put]
func (h *RegistryHandler) UpdatePackagingMaterial(c *gin.Context) {
	var req services.UpdateCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Message: err.Error()})
		return
	}

	err := h.registryService.UpdatePackagingMaterial(c.Request.Context(), c.Param("id"), &req)
	respondMutation(c, err, "Failed to update packaging material")
}

// @Summary Update a material quantity on the default packaging template
// @Tags registry
// @Accept json
// @Produce json
// @Param materialId path string true "Material ID"
// @Param request body services.UpdateQuantityRequest true "New quantity"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /packaging/template/{materialId} [put]
func (h *RegistryHandler) UpdatePackagingTemplateQuantity(c *gin.Context) {
	var req services.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Message: err.Error()})
		return
	}

	err := h.registryService.UpdatePackagingTemplateQuantity(c.Request.Context(), c.Param("materialId"), &req)
	respondMutation(c, err, "Failed to update packaging template")
}

// @Summary Record an ad spend entry
// @Tags registry
// @Accept json
// @Produce json
// @Param request body services.AddAdSpendRequest true "Ad spend"
// @Success 201 {object} models.AdSpend
// @Failure 400 {object} ErrorResponse
// @Router /ads [post]
func (h *RegistryHandler) AddAdSpend(c *gin.Context) {
	var req services.AddAdSpendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Message: err.Error()})
		return
	}

	ad, err := h.registryService.AddAdSpend(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to add ad spend", Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, ad)
}

// @Summary Record a manual expense
// @Tags registry
// @Accept json
// @Produce json
// @Param request body services.AddExpenseRequest true "Expense"
// @Success 201 {object} models.ExpenseTransaction
// @Failure 400 {object} ErrorResponse
// @Router /expenses [post]
func (h *RegistryHandler) AddExpense(c *gin.Context) {
	var req services.AddExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Message: err.Error()})
		return
	}

	expense, err := h.registryService.AddExpense(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to add expense", Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, expense)
}

// @Summary Toggle a fixed cost's active flag
// @Tags registry
// @Produce json
// @Param id path string true "Fixed cost ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /fixed-costs/{id}/toggle [post]
func (h *RegistryHandler) ToggleFixedCost(c *gin.Context) {
	err := h.registryService.ToggleFixedCost(c.Request.Context(), c.Param("id"))
	respondMutation(c, err, "Failed to toggle fixed cost")
}
