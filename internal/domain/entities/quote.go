package entities

import "time"

// QuoteStatus represents the lifecycle of a repair quote (orçamento).
//
// Domain notes:
//   - "pending" quotes can be approved or denied by the workshop staff.
//   - Approved quotes become work orders (OS) via work-order generation,
//     which also mints the customer portal token and seeds the timeline.
//   - "denied" and "concluido" are terminal.

type QuoteStatus string

const (
	QuoteStatusPending     QuoteStatus = "pending"
	QuoteStatusApproved    QuoteStatus = "approved"
	QuoteStatusDenied      QuoteStatus = "denied"
	QuoteStatusOSGenerated QuoteStatus = "os-generated"
	QuoteStatusEmAndamento QuoteStatus = "em-andamento"
	QuoteStatusConcluido   QuoteStatus = "concluido"
)

// Terminal reports whether no further lifecycle transition is allowed.
func (s QuoteStatus) Terminal() bool {
	return s == QuoteStatusDenied || s == QuoteStatusConcluido
}

// PaymentMethod selects the payment condition of a quote. Empty means unset.
// Only credit carries a surcharge (see the pricing package).

type PaymentMethod string

const (
	PaymentMethodPix    PaymentMethod = "pix"
	PaymentMethodDebit  PaymentMethod = "debit"
	PaymentMethodCredit PaymentMethod = "credit"
	PaymentMethodUnset  PaymentMethod = ""
)

// ServiceType buckets labor lines for the cost-breakdown-by-category report.

type ServiceType string

const (
	ServiceTypeBodywork  ServiceType = "bodywork"
	ServiceTypePrep      ServiceType = "prep"
	ServiceTypePaint     ServiceType = "paint"
	ServiceTypeFinishing ServiceType = "finishing"
)

// Service is a billable labor line on a damaged part.
// Cost contribution = LaborHours * CostPerHour.
type Service struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Type        ServiceType `json:"type"`
	LaborHours  float64     `json:"labor_hours"`
	CostPerHour float64     `json:"cost_per_hour"`
}

// LineItem is a priced replacement part or consumable material.
// Parts and materials are structurally identical; they differ only in
// display grouping, so they share one type.
// Cost contribution = Quantity * UnitCost.
type LineItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
}

// DamagedPart is one physical vehicle part flagged for repair, carrying its
// own labor, replacement-part and material lines. A DamagedPart exists in
// Quote.DamagedParts if and only if the part is flagged as damaged; removing
// it discards all its lines.
type DamagedPart struct {
	PartID           string     `json:"part_id"`
	PartName         string     `json:"part_name"`
	Services         []Service  `json:"services"`
	ReplacementParts []LineItem `json:"replacement_parts"`
	Materials        []LineItem `json:"materials"`
}

type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type Vehicle struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  string `json:"year"`
	Color string `json:"color"`
	Plate string `json:"plate"`
}

type Photo struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// TimelineEvent is a staff-authored progress update shown to the customer.
// Status here is a free-text progress label (e.g. "Em Pintura"), distinct
// from Quote.Status. The ledger is append-only; the last event by array
// order is the current progress shown in the portal.
type TimelineEvent struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	PhotoURL    string    `json:"photo_url,omitempty"`
}

// ChatSender identifies which side of the portal chat wrote a message.

type ChatSender string

const (
	ChatSenderCustomer ChatSender = "customer"
	ChatSenderWorkshop ChatSender = "workshop"
)

// ChatMessage belongs to the append-only portal chat ledger.
type ChatMessage struct {
	ID        string     `json:"id"`
	Sender    ChatSender `json:"sender"`
	Text      string     `json:"text"`
	Timestamp time.Time  `json:"timestamp"`
}

// Quote is the aggregate root: a priced repair estimate for one
// customer/vehicle that evolves through the status lifecycle into a work
// order. Totals are never stored — they are recomputed from DamagedParts by
// the pricing package on every read, so stored state can never diverge from
// live edits.
//
// Storage model (DynamoDB):
//   - PK: id
//
// CustomerPortalToken is the sole secret granting a customer read/chat
// access to this single quote. It is minted at work-order generation and
// must be unguessable.
type Quote struct {
	ID            string                 `json:"id"`
	CreatedAt     time.Time              `json:"created_at"`
	CreatedByID   string                 `json:"created_by_id,omitempty"`
	CreatedByName string                 `json:"created_by_name,omitempty"`
	Status        QuoteStatus            `json:"status"`
	Customer      Customer               `json:"customer"`
	Vehicle       Vehicle                `json:"vehicle"`
	Photos        []Photo                `json:"photos"`
	DamagedParts  map[string]DamagedPart `json:"damaged_parts"`
	PaymentMethod PaymentMethod          `json:"payment_method"`

	// Lifecycle extras, present only once relevant.
	ApprovedAt          *time.Time      `json:"approved_at,omitempty"`
	OSGeneratedAt       *time.Time      `json:"os_generated_at,omitempty"`
	CustomerPortalToken string          `json:"customer_portal_token,omitempty"`
	Signature           string          `json:"signature,omitempty"`
	SignedAt            *time.Time      `json:"signed_at,omitempty"`
	TermsAndConditions  string          `json:"terms_and_conditions,omitempty"`
	Timeline            []TimelineEvent `json:"timeline,omitempty"`
	Chat                []ChatMessage   `json:"chat,omitempty"`
}

// ReadyToFinalize is the "ready to generate a preview" gate: customer and
// vehicle identified, at least one damaged part, and a payment method chosen.
func (q Quote) ReadyToFinalize() bool {
	return q.Customer.Name != "" && q.Vehicle.Make != "" &&
		len(q.DamagedParts) > 0 && q.PaymentMethod != PaymentMethodUnset
}

// LatestTimelineEvent returns the most recent event by array order, or false
// when the timeline is empty.
func (q Quote) LatestTimelineEvent() (TimelineEvent, bool) {
	if len(q.Timeline) == 0 {
		return TimelineEvent{}, false
	}
	return q.Timeline[len(q.Timeline)-1], true
}
