// Package pricing computes quote totals. It is pure: a Breakdown is derived
// from the damaged-part lines on every call and is never stored, so totals
// cannot drift from the lines they summarize.
package pricing

import "reparo_pro/internal/domain/entities"

// Breakdown is the full cost decomposition of a quote.
type Breakdown struct {
	LaborTotal      float64                             `json:"labor_total"`
	PartsTotal      float64                             `json:"parts_total"`
	MaterialsTotal  float64                             `json:"materials_total"`
	LaborByCategory map[entities.ServiceType]float64    `json:"labor_by_category"`
	Subtotal        float64                             `json:"subtotal"`
	// PaymentSurcharge is non-zero only for credit-card payment.
	PaymentSurcharge float64 `json:"payment_surcharge"`
	GrandTotal       float64 `json:"grand_total"`
}

// CreditSurchargeRate is the credit-card fee applied on top of the subtotal.
const CreditSurchargeRate = 4.99 / 100

// Calculate prices the given damaged parts under the chosen payment method.
// An empty or nil map yields an all-zero breakdown with every category
// present at zero.
func Calculate(damagedParts map[string]entities.DamagedPart, method entities.PaymentMethod) Breakdown {
	b := Breakdown{
		LaborByCategory: map[entities.ServiceType]float64{
			entities.ServiceTypeBodywork:  0,
			entities.ServiceTypePrep:      0,
			entities.ServiceTypePaint:     0,
			entities.ServiceTypeFinishing: 0,
		},
	}

	for _, part := range damagedParts {
		for _, svc := range part.Services {
			cost := svc.LaborHours * svc.CostPerHour
			b.LaborTotal += cost
			b.LaborByCategory[svc.Type] += cost
		}
		for _, item := range part.ReplacementParts {
			b.PartsTotal += item.Quantity * item.UnitCost
		}
		for _, item := range part.Materials {
			b.MaterialsTotal += item.Quantity * item.UnitCost
		}
	}

	b.Subtotal = b.LaborTotal + b.PartsTotal + b.MaterialsTotal
	if method == entities.PaymentMethodCredit {
		b.PaymentSurcharge = b.Subtotal * CreditSurchargeRate
	}
	b.GrandTotal = b.Subtotal + b.PaymentSurcharge
	return b
}
