package interfaces

import (
	"context"

	"reparo_pro/internal/domain/entities"
)

// ISuggestionProvider abstracts the AI assistant (e.g. Gemini).
//
// Suggest takes a free-text damage description and returns catalog part ids
// plus free-text service names. Matching the names against the service
// catalog is the caller's job.
type ISuggestionProvider interface {
	Suggest(ctx context.Context, description string) (entities.RepairSuggestion, error)
}
