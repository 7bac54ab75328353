package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"reparo_pro/internal/domain/entities"
	"reparo_pro/internal/domain/registry"
	"reparo_pro/internal/usecase/interfaces"
)

var (
	ErrEmptyDamageDescription = errors.New("damage description is required")
	ErrSuggestionUnavailable  = errors.New("suggestion provider not configured")
)

// IDamagedPartUseCase edits the damaged-part registry of a quote. Every
// operation persists the updated quote and returns it, so the caller always
// sees totals consistent with the new lines.

type IDamagedPartUseCase interface {
	TogglePart(ctx context.Context, actor entities.Actor, quoteID, partID string) (entities.Quote, error)
	SetServiceSelected(ctx context.Context, actor entities.Actor, quoteID, partID, serviceName string, selected bool) (entities.Quote, error)
	UpdateServiceHours(ctx context.Context, actor entities.Actor, quoteID, partID, serviceID string, hours float64) (entities.Quote, error)
	AddLineItem(ctx context.Context, actor entities.Actor, quoteID, partID string, kind registry.LineItemKind, item entities.LineItem) (entities.Quote, error)
	UpdateLineItem(ctx context.Context, actor entities.Actor, quoteID, partID string, kind registry.LineItemKind, item entities.LineItem) (entities.Quote, error)
	RemoveLineItem(ctx context.Context, actor entities.Actor, quoteID, partID string, kind registry.LineItemKind, itemID string) (entities.Quote, error)
	SuggestRepairs(ctx context.Context, actor entities.Actor, quoteID, description string) (entities.Quote, entities.RepairSuggestion, error)
}

type DamagedPartUseCase struct {
	quotes   *QuoteUseCase
	provider interfaces.ISuggestionProvider
}

var _ IDamagedPartUseCase = (*DamagedPartUseCase)(nil)

func NewDamagedPartUseCase(quotes *QuoteUseCase, provider interfaces.ISuggestionProvider) *DamagedPartUseCase {
	return &DamagedPartUseCase{quotes: quotes, provider: provider}
}

// edit runs one registry operation against the quote's damaged-part map and
// persists the result.
func (u *DamagedPartUseCase) edit(ctx context.Context, actor entities.Actor, quoteID string, op func(map[string]entities.DamagedPart) (map[string]entities.DamagedPart, error)) (entities.Quote, error) {
	if !actor.Role.CanMutateQuotes() {
		return entities.Quote{}, ErrForbidden
	}
	return u.quotes.mutate(ctx, quoteID, func(q *entities.Quote) error {
		updated, err := op(q.DamagedParts)
		if err != nil {
			return err
		}
		q.DamagedParts = updated
		return nil
	})
}

func (u *DamagedPartUseCase) TogglePart(ctx context.Context, actor entities.Actor, quoteID, partID string) (entities.Quote, error) {
	return u.edit(ctx, actor, quoteID, func(parts map[string]entities.DamagedPart) (map[string]entities.DamagedPart, error) {
		return registry.TogglePart(parts, partID)
	})
}

func (u *DamagedPartUseCase) SetServiceSelected(ctx context.Context, actor entities.Actor, quoteID, partID, serviceName string, selected bool) (entities.Quote, error) {
	return u.edit(ctx, actor, quoteID, func(parts map[string]entities.DamagedPart) (map[string]entities.DamagedPart, error) {
		return registry.SetServiceSelected(parts, partID, serviceName, selected)
	})
}

func (u *DamagedPartUseCase) UpdateServiceHours(ctx context.Context, actor entities.Actor, quoteID, partID, serviceID string, hours float64) (entities.Quote, error) {
	return u.edit(ctx, actor, quoteID, func(parts map[string]entities.DamagedPart) (map[string]entities.DamagedPart, error) {
		return registry.UpdateServiceHours(parts, partID, serviceID, hours)
	})
}

func (u *DamagedPartUseCase) AddLineItem(ctx context.Context, actor entities.Actor, quoteID, partID string, kind registry.LineItemKind, item entities.LineItem) (entities.Quote, error) {
	return u.edit(ctx, actor, quoteID, func(parts map[string]entities.DamagedPart) (map[string]entities.DamagedPart, error) {
		return registry.AddLineItem(parts, partID, kind, item)
	})
}

func (u *DamagedPartUseCase) UpdateLineItem(ctx context.Context, actor entities.Actor, quoteID, partID string, kind registry.LineItemKind, item entities.LineItem) (entities.Quote, error) {
	return u.edit(ctx, actor, quoteID, func(parts map[string]entities.DamagedPart) (map[string]entities.DamagedPart, error) {
		return registry.UpdateLineItem(parts, partID, kind, item)
	})
}

func (u *DamagedPartUseCase) RemoveLineItem(ctx context.Context, actor entities.Actor, quoteID, partID string, kind registry.LineItemKind, itemID string) (entities.Quote, error) {
	return u.edit(ctx, actor, quoteID, func(parts map[string]entities.DamagedPart) (map[string]entities.DamagedPart, error) {
		return registry.RemoveLineItem(parts, partID, kind, itemID)
	})
}

// SuggestRepairs asks the AI provider to read the damage description and
// bulk-inserts the matched parts/services into the quote. Parts already
// flagged stay untouched, so repeating the call is harmless.
func (u *DamagedPartUseCase) SuggestRepairs(ctx context.Context, actor entities.Actor, quoteID, description string) (entities.Quote, entities.RepairSuggestion, error) {
	if !actor.Role.CanMutateQuotes() {
		return entities.Quote{}, entities.RepairSuggestion{}, ErrForbidden
	}
	if strings.TrimSpace(description) == "" {
		return entities.Quote{}, entities.RepairSuggestion{}, ErrEmptyDamageDescription
	}
	if u.provider == nil {
		return entities.Quote{}, entities.RepairSuggestion{}, ErrSuggestionUnavailable
	}

	suggestion, err := u.provider.Suggest(ctx, description)
	if err != nil {
		log.Printf("[suggestion][usecase] provider error: %v", err)
		return entities.Quote{}, entities.RepairSuggestion{}, err
	}

	q, err := u.quotes.mutate(ctx, quoteID, func(q *entities.Quote) error {
		q.DamagedParts = registry.ApplySuggestion(q.DamagedParts, suggestion)
		return nil
	})
	if err != nil {
		return entities.Quote{}, entities.RepairSuggestion{}, err
	}
	return q, suggestion, nil
}
