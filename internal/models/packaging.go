package models

// PackagingMaterial represents a consumable packaging item with a
// user-defined cost per piece.
type PackagingMaterial struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	CostPerUnit float64 `json:"cost_per_unit" validate:"min=0"`
}

// TemplateItem is one material position on a packaging template
type TemplateItem struct {
	MaterialID string `json:"material_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"min=0"`
}

// PackagingTemplate describes the default packaging consumed per order. Only
// the first template in the registry is active; there is a single default
// template slot, not a per-order selection.
type PackagingTemplate struct {
	ID    string         `json:"id" validate:"required"`
	Name  string         `json:"name"`
	Items []TemplateItem `json:"items"`
}
