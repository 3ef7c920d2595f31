package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"store-profit-api/internal/models"
	"store-profit-api/internal/store"
)

// registryService implements the RegistryService interface
type registryService struct {
	store     *store.Store
	validator *validator.Validate
}

// NewRegistryService creates a new rule registry service
func NewRegistryService(st *store.Store) RegistryService {
	return &registryService{
		store:     st,
		validator: validator.New(),
	}
}

// UpdateProductCost sets a product's unit cost
func (s *registryService) UpdateProductCost(ctx context.Context, productID string, req *UpdateCostRequest) error {
	if productID == "" {
		return fmt.Errorf("product ID cannot be empty")
	}
	if req == nil {
		return fmt.Errorf("update cost request cannot be nil")
	}

	if err := s.store.UpdateProductCost(productID, req.Amount.Float64()); err != nil {
		return fmt.Errorf("failed to update product cost: %w", err)
	}
	return nil
}

// UpdatePaymentRule sets the fee parameters of a payment rule
func (s *registryService) UpdatePaymentRule(ctx context.Context, method models.PaymentMethod, req *UpdatePaymentRuleRequest) error {
	if !method.Valid() {
		return fmt.Errorf("invalid payment method: %s", method)
	}
	if req == nil {
		return fmt.Errorf("update payment rule request cannot be nil")
	}

	if err := s.store.UpdatePaymentRule(method, req.PercentFee.Float64(), req.FixedFee.Float64()); err != nil {
		return fmt.Errorf("failed to update payment rule: %w", err)
	}
	return nil
}

// UpdateShippingRule sets the flat cost of a shipping rule
func (s *registryService) UpdateShippingRule(ctx context.Context, carrier models.ShippingCarrier, req *UpdateCostRequest) error {
	if !carrier.Valid() {
		return fmt.Errorf("invalid shipping carrier: %s", carrier)
	}
	if req == nil {
		return fmt.Errorf("update cost request cannot be nil")
	}

	if err := s.store.UpdateShippingRule(carrier, req.Amount.Float64()); err != nil {
		return fmt.Errorf("failed to update shipping rule: %w", err)
	}
	return nil
}

// UpdatePackagingMaterial sets the per-unit cost of a packaging material
func (s *registryService) UpdatePackagingMaterial(ctx context.Context, materialID string, req *UpdateCostRequest) error {
	if materialID == "" {
		return fmt.Errorf("material ID cannot be empty")
	}
	if req == nil {
		return fmt.Errorf("update cost request cannot be nil")
	}

	if err := s.store.UpdatePackagingMaterial(materialID, req.Amount.Float64()); err != nil {
		return fmt.Errorf("failed to update packaging material: %w", err)
	}
	return nil
}

// UpdatePackagingTemplateQuantity sets a material quantity on the default template
func (s *registryService) UpdatePackagingTemplateQuantity(ctx context.Context, materialID string, req *UpdateQuantityRequest) error {
	if materialID == "" {
		return fmt.Errorf("material ID cannot be empty")
	}
	if req == nil {
		return fmt.Errorf("update quantity request cannot be nil")
	}
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	if err := s.store.UpdatePackagingTemplateQuantity(materialID, req.Quantity); err != nil {
		return fmt.Errorf("failed to update packaging template: %w", err)
	}
	return nil
}

// AddAdSpend records a new ad spend entry
func (s *registryService) AddAdSpend(ctx context.Context, req *AddAdSpendRequest) (*models.AdSpend, error) {
	if req == nil {
		return nil, fmt.Errorf("add ad spend request cannot be nil")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ad := models.NewAdSpend(req.Platform, req.Amount.Float64())
	ad.Type = req.Type
	ad.ROAS = req.ROAS

	s.store.AddAdSpend(*ad)
	return ad, nil
}

// AddExpense records a new manual ledger entry
func (s *registryService) AddExpense(ctx context.Context, req *AddExpenseRequest) (*models.ExpenseTransaction, error) {
	if req == nil {
		return nil, fmt.Errorf("add expense request cannot be nil")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	expense := models.NewExpenseTransaction(req.Amount.Float64(), req.Type, req.Description)
	s.store.AddExpense(*expense)
	return expense, nil
}

// ToggleFixedCost flips a fixed cost's active flag
func (s *registryService) ToggleFixedCost(ctx context.Context, fixedCostID string) error {
	if fixedCostID == "" {
		return fmt.Errorf("fixed cost ID cannot be empty")
	}

	if err := s.store.ToggleFixedCost(fixedCostID); err != nil {
		return fmt.Errorf("failed to toggle fixed cost: %w", err)
	}
	return nil
}
