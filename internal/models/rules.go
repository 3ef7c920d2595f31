package models

// PaymentMethod identifies one of the payment channels the store accepts.
// The set is closed so an unmatched fee rule is a deliberate fallback path
// rather than a silent string mismatch.
type PaymentMethod string

const (
	PaymentMada     PaymentMethod = "MADA"
	PaymentVisa     PaymentMethod = "VISA"
	PaymentApplePay PaymentMethod = "APPLE_PAY"
	PaymentTabby    PaymentMethod = "TABBY"
	PaymentTamara   PaymentMethod = "TAMARA"
	PaymentCOD      PaymentMethod = "COD"
)

// AllPaymentMethods lists every known payment method
var AllPaymentMethods = []PaymentMethod{
	PaymentMada, PaymentVisa, PaymentApplePay, PaymentTabby, PaymentTamara, PaymentCOD,
}

// Valid returns true if the method is one of the known channels
func (m PaymentMethod) Valid() bool {
	for _, known := range AllPaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

// ShippingCarrier identifies one of the delivery companies the store ships with
type ShippingCarrier string

const (
	CarrierAramex      ShippingCarrier = "ARAMEX"
	CarrierSMSA        ShippingCarrier = "SMSA"
	CarrierSPL         ShippingCarrier = "SPL"
	CarrierDHL         ShippingCarrier = "DHL"
	CarrierOwnDelivery ShippingCarrier = "OWN_DELIVERY"
)

// AllShippingCarriers lists every known carrier
var AllShippingCarriers = []ShippingCarrier{
	CarrierAramex, CarrierSMSA, CarrierSPL, CarrierDHL, CarrierOwnDelivery,
}

// Valid returns true if the carrier is one of the known companies
func (c ShippingCarrier) Valid() bool {
	for _, known := range AllShippingCarriers {
		if c == known {
			return true
		}
	}
	return false
}

// PaymentRule describes the fee a payment provider charges the seller and how
// long it holds the money before settlement.
type PaymentRule struct {
	Method         PaymentMethod `json:"method" validate:"required"`
	Name           string        `json:"name"`
	PercentFee     float64       `json:"percent_fee" validate:"min=0"`
	FixedFee       float64       `json:"fixed_fee" validate:"min=0"`
	SettlementDays int           `json:"settlement_days" validate:"min=0"`
}

// Fee returns the provider fee for a payment of the given amount
func (r *PaymentRule) Fee(amount float64) float64 {
	return amount*(r.PercentFee/100) + r.FixedFee
}

// ShippingRule describes the flat delivery cost a carrier charges the seller.
// This is the seller's cost, not the shipping price shown to the customer.
type ShippingRule struct {
	Carrier ShippingCarrier `json:"carrier" validate:"required"`
	Name    string          `json:"name"`
	Cost    float64         `json:"cost" validate:"min=0"`
}
