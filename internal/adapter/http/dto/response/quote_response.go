package response

import (
	"time"

	"reparo_pro/internal/domain/entities"
	"reparo_pro/internal/domain/pricing"
)

type BreakdownResponse struct {
	LaborTotal       float64            `json:"labor_total"`
	PartsTotal       float64            `json:"parts_total"`
	MaterialsTotal   float64            `json:"materials_total"`
	LaborByCategory  map[string]float64 `json:"labor_by_category"`
	Subtotal         float64            `json:"subtotal"`
	PaymentSurcharge float64            `json:"payment_surcharge"`
	GrandTotal       float64            `json:"grand_total"`
}

// QuoteResponse is the full quote representation. Totals is always computed
// from the damaged parts at response time.
type QuoteResponse struct {
	ID                  string                             `json:"id"`
	CreatedAt           time.Time                          `json:"created_at"`
	CreatedByID         string                             `json:"created_by_id,omitempty"`
	CreatedByName       string                             `json:"created_by_name,omitempty"`
	Status              string                             `json:"status"`
	Customer            entities.Customer                  `json:"customer"`
	Vehicle             entities.Vehicle                   `json:"vehicle"`
	Photos              []entities.Photo                   `json:"photos"`
	DamagedParts        map[string]entities.DamagedPart    `json:"damaged_parts"`
	PaymentMethod       string                             `json:"payment_method"`
	ApprovedAt          *time.Time                         `json:"approved_at,omitempty"`
	OSGeneratedAt       *time.Time                         `json:"os_generated_at,omitempty"`
	CustomerPortalToken string                             `json:"customer_portal_token,omitempty"`
	Signature           string                             `json:"signature,omitempty"`
	SignedAt            *time.Time                         `json:"signed_at,omitempty"`
	TermsAndConditions  string                             `json:"terms_and_conditions,omitempty"`
	Timeline            []entities.TimelineEvent           `json:"timeline,omitempty"`
	Chat                []entities.ChatMessage             `json:"chat,omitempty"`
	Totals              BreakdownResponse                  `json:"totals"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	b := pricing.Calculate(q.DamagedParts, q.PaymentMethod)
	byCategory := make(map[string]float64, len(b.LaborByCategory))
	for cat, v := range b.LaborByCategory {
		byCategory[string(cat)] = v
	}
	return QuoteResponse{
		ID:                  q.ID,
		CreatedAt:           q.CreatedAt,
		CreatedByID:         q.CreatedByID,
		CreatedByName:       q.CreatedByName,
		Status:              string(q.Status),
		Customer:            q.Customer,
		Vehicle:             q.Vehicle,
		Photos:              q.Photos,
		DamagedParts:        q.DamagedParts,
		PaymentMethod:       string(q.PaymentMethod),
		ApprovedAt:          q.ApprovedAt,
		OSGeneratedAt:       q.OSGeneratedAt,
		CustomerPortalToken: q.CustomerPortalToken,
		Signature:           q.Signature,
		SignedAt:            q.SignedAt,
		TermsAndConditions:  q.TermsAndConditions,
		Timeline:            q.Timeline,
		Chat:                q.Chat,
		Totals: BreakdownResponse{
			LaborTotal:       b.LaborTotal,
			PartsTotal:       b.PartsTotal,
			MaterialsTotal:   b.MaterialsTotal,
			LaborByCategory:  byCategory,
			Subtotal:         b.Subtotal,
			PaymentSurcharge: b.PaymentSurcharge,
			GrandTotal:       b.GrandTotal,
		},
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}

// PortalQuoteResponse is the customer-facing view. The portal token itself
// is omitted: the caller already holds it and it must not leak into shared
// screens.
type PortalQuoteResponse struct {
	ID                 string                          `json:"id"`
	Status             string                          `json:"status"`
	Customer           entities.Customer               `json:"customer"`
	Vehicle            entities.Vehicle                `json:"vehicle"`
	DamagedParts       map[string]entities.DamagedPart `json:"damaged_parts"`
	PaymentMethod      string                          `json:"payment_method"`
	OSGeneratedAt      *time.Time                      `json:"os_generated_at,omitempty"`
	Signature          string                          `json:"signature,omitempty"`
	SignedAt           *time.Time                      `json:"signed_at,omitempty"`
	TermsAndConditions string                          `json:"terms_and_conditions,omitempty"`
	Timeline           []entities.TimelineEvent        `json:"timeline"`
	Chat               []entities.ChatMessage          `json:"chat"`
	Totals             BreakdownResponse               `json:"totals"`
}

func PortalFromQuote(q entities.Quote) PortalQuoteResponse {
	full := FromQuote(q)
	timeline := q.Timeline
	if timeline == nil {
		timeline = []entities.TimelineEvent{}
	}
	chat := q.Chat
	if chat == nil {
		chat = []entities.ChatMessage{}
	}
	return PortalQuoteResponse{
		ID:                 q.ID,
		Status:             string(q.Status),
		Customer:           q.Customer,
		Vehicle:            q.Vehicle,
		DamagedParts:       q.DamagedParts,
		PaymentMethod:      string(q.PaymentMethod),
		OSGeneratedAt:      q.OSGeneratedAt,
		Signature:          q.Signature,
		SignedAt:           q.SignedAt,
		TermsAndConditions: q.TermsAndConditions,
		Timeline:           timeline,
		Chat:               chat,
		Totals:             full.Totals,
	}
}
