package interfaces

import (
	"context"

	"reparo_pro/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for the quote collection.
//
// The contract is deliberately collection-level: every mutation loads the
// full set, applies the change in memory and writes the full set back. Quote
// volume is small (one workshop) and this keeps the lifecycle logic free of
// partial-update semantics.

type IQuoteRepository interface {
	LoadAll(ctx context.Context) ([]entities.Quote, error)
	SaveAll(ctx context.Context, quotes []entities.Quote) error
}
