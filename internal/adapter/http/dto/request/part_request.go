package request

// ServiceSelectionRequest adds or removes a catalog service on a damaged part.
type ServiceSelectionRequest struct {
	ServiceName string `json:"service_name" binding:"required"`
	Selected    *bool  `json:"selected" binding:"required"`
}

type ServiceHoursRequest struct {
	LaborHours *float64 `json:"labor_hours" binding:"required"`
}

// LineItemRequest carries a replacement part or material line. Kind selects
// the target list ("part" or "material").
type LineItemRequest struct {
	Kind     string  `json:"kind" binding:"required"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
}

type SuggestionRequest struct {
	Description string `json:"description" binding:"required"`
}
