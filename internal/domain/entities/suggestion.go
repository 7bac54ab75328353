package entities

// RepairSuggestion is what the AI assistant extracts from a free-text damage
// description: which catalog parts look damaged and, per part id, which
// service names it recommends for that part. Service names are free text from
// the model and must be fuzzy-matched against the catalog before use.
type RepairSuggestion struct {
	DamagedParts      []string            `json:"damaged_parts"`
	SuggestedServices map[string][]string `json:"suggested_services"`
}
