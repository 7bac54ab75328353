package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"reparo_pro/internal/domain/catalog"
	"reparo_pro/internal/domain/entities"
	"reparo_pro/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound        = errors.New("quote not found")
	ErrInvalidQuoteID       = errors.New("invalid quote id")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrForbidden            = errors.New("caller role not allowed")
	ErrChatClosed           = errors.New("chat is closed for completed work orders")
	ErrEmptyDescription     = errors.New("timeline event requires a description")
	ErrEmptyChatMessage     = errors.New("chat message requires text")
	ErrEmptySignature       = errors.New("signature is required")
	ErrInvalidServiceStatus = errors.New("invalid service status")
	ErrMissingPortalToken   = errors.New("portal token is required")
	ErrInvalidPortalToken   = errors.New("portal token does not match any work order")
)

// IQuoteUseCase exposes the quote lifecycle:
//
//	pending -> approved -> os-generated -> em-andamento -> concluido
//	pending -> denied
//
// plus the append-only timeline/chat ledgers and the token-scoped customer
// portal reads.

type IQuoteUseCase interface {
	Save(ctx context.Context, actor entities.Actor, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	SearchByPlate(ctx context.Context, plate string) ([]entities.Quote, error)
	Delete(ctx context.Context, actor entities.Actor, id string) error

	SetApprovalStatus(ctx context.Context, actor entities.Actor, id string, approve bool) (entities.Quote, error)
	GenerateWorkOrder(ctx context.Context, actor entities.Actor, id string) (entities.Quote, error)
	Sign(ctx context.Context, id, signature string) (entities.Quote, error)
	SetTerms(ctx context.Context, actor entities.Actor, id, terms string) (entities.Quote, error)
	SetServiceStatus(ctx context.Context, actor entities.Actor, id string, status entities.QuoteStatus) (entities.Quote, error)

	AddTimelineEvent(ctx context.Context, actor entities.Actor, id string, ev entities.TimelineEvent) (entities.Quote, error)
	AddChatMessage(ctx context.Context, actor entities.Actor, id, text string) (entities.Quote, error)

	GetByPortalToken(ctx context.Context, token string) (entities.Quote, error)
	AddPortalChatMessage(ctx context.Context, token, text string) (entities.Quote, error)
	SignByPortalToken(ctx context.Context, token, signature string) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

// mutate loads the collection, applies fn to the quote with the given id and
// writes the whole collection back. fn edits the quote in place.
func (u *QuoteUseCase) mutate(ctx context.Context, id string, fn func(*entities.Quote) error) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	quotes, err := u.repo.LoadAll(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	for i := range quotes {
		if quotes[i].ID != id {
			continue
		}
		if err := fn(&quotes[i]); err != nil {
			return entities.Quote{}, err
		}
		if err := u.repo.SaveAll(ctx, quotes); err != nil {
			return entities.Quote{}, err
		}
		return quotes[i], nil
	}
	return entities.Quote{}, ErrQuoteNotFound
}

func (u *QuoteUseCase) Save(ctx context.Context, actor entities.Actor, q entities.Quote) (entities.Quote, error) {
	if !actor.Role.CanMutateQuotes() {
		return entities.Quote{}, ErrForbidden
	}
	quotes, err := u.repo.LoadAll(ctx)
	if err != nil {
		return entities.Quote{}, err
	}

	q.ID = strings.TrimSpace(q.ID)
	if q.ID != "" {
		for i := range quotes {
			if quotes[i].ID != q.ID {
				continue
			}
			// Update only the editable estimate fields; lifecycle state
			// (status, timestamps, token, ledgers) is owned by the
			// transition operations.
			quotes[i].Customer = q.Customer
			quotes[i].Vehicle = q.Vehicle
			quotes[i].Photos = q.Photos
			quotes[i].DamagedParts = q.DamagedParts
			quotes[i].PaymentMethod = q.PaymentMethod
			if err := u.repo.SaveAll(ctx, quotes); err != nil {
				return entities.Quote{}, err
			}
			return quotes[i], nil
		}
	}

	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	q.CreatedAt = time.Now().UTC()
	q.CreatedByID = actor.ID
	q.CreatedByName = actor.Name
	q.Status = entities.QuoteStatusPending
	if q.DamagedParts == nil {
		q.DamagedParts = map[string]entities.DamagedPart{}
	}
	if q.Photos == nil {
		q.Photos = []entities.Photo{}
	}
	quotes = append(quotes, q)
	if err := u.repo.SaveAll(ctx, quotes); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	quotes, err := u.repo.LoadAll(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	for _, q := range quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return entities.Quote{}, ErrQuoteNotFound
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.LoadAll(ctx)
}

func (u *QuoteUseCase) SearchByPlate(ctx context.Context, plate string) ([]entities.Quote, error) {
	plate = strings.ToLower(strings.TrimSpace(plate))
	quotes, err := u.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if plate == "" {
		return quotes, nil
	}
	matched := []entities.Quote{}
	for _, q := range quotes {
		if strings.Contains(strings.ToLower(q.Vehicle.Plate), plate) {
			matched = append(matched, q)
		}
	}
	return matched, nil
}

func (u *QuoteUseCase) Delete(ctx context.Context, actor entities.Actor, id string) error {
	if actor.Role != entities.UserRoleAdmin {
		return ErrForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidQuoteID
	}
	quotes, err := u.repo.LoadAll(ctx)
	if err != nil {
		return err
	}
	for i := range quotes {
		if quotes[i].ID == id {
			quotes = append(quotes[:i], quotes[i+1:]...)
			return u.repo.SaveAll(ctx, quotes)
		}
	}
	return ErrQuoteNotFound
}

func (u *QuoteUseCase) SetApprovalStatus(ctx context.Context, actor entities.Actor, id string, approve bool) (entities.Quote, error) {
	if !actor.Role.CanMutateQuotes() {
		return entities.Quote{}, ErrForbidden
	}
	return u.mutate(ctx, id, func(q *entities.Quote) error {
		if q.Status != entities.QuoteStatusPending {
			return ErrInvalidTransition
		}
		if approve {
			q.Status = entities.QuoteStatusApproved
			now := time.Now().UTC()
			q.ApprovedAt = &now
		} else {
			q.Status = entities.QuoteStatusDenied
		}
		return nil
	})
}

// GenerateWorkOrder turns an approved quote into a work order: stamps the
// generation time, mints the customer portal token, applies the default
// terms when none were set and seeds the timeline. A second call is rejected
// because the quote is no longer approved.
func (u *QuoteUseCase) GenerateWorkOrder(ctx context.Context, actor entities.Actor, id string) (entities.Quote, error) {
	if !actor.Role.CanMutateQuotes() {
		return entities.Quote{}, ErrForbidden
	}
	return u.mutate(ctx, id, func(q *entities.Quote) error {
		if q.Status != entities.QuoteStatusApproved {
			return ErrInvalidTransition
		}
		now := time.Now().UTC()
		q.Status = entities.QuoteStatusOSGenerated
		q.OSGeneratedAt = &now
		q.CustomerPortalToken = uuid.NewString()
		if q.TermsAndConditions == "" {
			q.TermsAndConditions = catalog.DefaultTerms
		}
		q.Timeline = []entities.TimelineEvent{{
			ID:          uuid.NewString(),
			Date:        now,
			Status:      catalog.WorkOrderOpenedStatus,
			Description: catalog.WorkOrderOpenedDescription,
		}}
		q.Chat = []entities.ChatMessage{}
		return nil
	})
}

// Sign records the customer's signature and moves the work order to
// em-andamento regardless of its prior stage.
func (u *QuoteUseCase) Sign(ctx context.Context, id, signature string) (entities.Quote, error) {
	if strings.TrimSpace(signature) == "" {
		return entities.Quote{}, ErrEmptySignature
	}
	return u.mutate(ctx, id, func(q *entities.Quote) error {
		applySignature(q, signature)
		return nil
	})
}

func applySignature(q *entities.Quote, signature string) {
	now := time.Now().UTC()
	q.Signature = signature
	q.SignedAt = &now
	q.Status = entities.QuoteStatusEmAndamento
}

func (u *QuoteUseCase) SetTerms(ctx context.Context, actor entities.Actor, id, terms string) (entities.Quote, error) {
	if !actor.Role.CanMutateQuotes() {
		return entities.Quote{}, ErrForbidden
	}
	return u.mutate(ctx, id, func(q *entities.Quote) error {
		q.TermsAndConditions = terms
		return nil
	})
}

// SetServiceStatus is the admin override for the work-order stage. It
// accepts any of the post-OS statuses without validating the edge, so an
// admin can move a stuck order forward or backward.
func (u *QuoteUseCase) SetServiceStatus(ctx context.Context, actor entities.Actor, id string, status entities.QuoteStatus) (entities.Quote, error) {
	if actor.Role != entities.UserRoleAdmin {
		return entities.Quote{}, ErrForbidden
	}
	switch status {
	case entities.QuoteStatusOSGenerated, entities.QuoteStatusEmAndamento, entities.QuoteStatusConcluido:
	default:
		return entities.Quote{}, ErrInvalidServiceStatus
	}
	return u.mutate(ctx, id, func(q *entities.Quote) error {
		q.Status = status
		return nil
	})
}

func (u *QuoteUseCase) AddTimelineEvent(ctx context.Context, actor entities.Actor, id string, ev entities.TimelineEvent) (entities.Quote, error) {
	if !actor.Role.CanMutateQuotes() {
		return entities.Quote{}, ErrForbidden
	}
	if strings.TrimSpace(ev.Description) == "" {
		return entities.Quote{}, ErrEmptyDescription
	}
	return u.mutate(ctx, id, func(q *entities.Quote) error {
		ev.ID = uuid.NewString()
		ev.Date = time.Now().UTC()
		q.Timeline = append(q.Timeline, ev)
		return nil
	})
}

func (u *QuoteUseCase) AddChatMessage(ctx context.Context, actor entities.Actor, id, text string) (entities.Quote, error) {
	if !actor.Role.CanMutateQuotes() {
		return entities.Quote{}, ErrForbidden
	}
	return u.mutate(ctx, id, func(q *entities.Quote) error {
		return appendChat(q, entities.ChatSenderWorkshop, text)
	})
}

// appendChat enforces the shared ledger rules for both chat senders.
func appendChat(q *entities.Quote, sender entities.ChatSender, text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyChatMessage
	}
	if q.Status == entities.QuoteStatusConcluido {
		return ErrChatClosed
	}
	q.Chat = append(q.Chat, entities.ChatMessage{
		ID:        uuid.NewString(),
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

func (u *QuoteUseCase) findByPortalToken(ctx context.Context, token string) ([]entities.Quote, int, error) {
	if strings.TrimSpace(token) == "" {
		return nil, 0, ErrMissingPortalToken
	}
	quotes, err := u.repo.LoadAll(ctx)
	if err != nil {
		return nil, 0, err
	}
	for i := range quotes {
		if quotes[i].CustomerPortalToken != "" && quotes[i].CustomerPortalToken == token {
			return quotes, i, nil
		}
	}
	return nil, 0, ErrInvalidPortalToken
}

func (u *QuoteUseCase) GetByPortalToken(ctx context.Context, token string) (entities.Quote, error) {
	quotes, i, err := u.findByPortalToken(ctx, token)
	if err != nil {
		return entities.Quote{}, err
	}
	return quotes[i], nil
}

func (u *QuoteUseCase) AddPortalChatMessage(ctx context.Context, token, text string) (entities.Quote, error) {
	quotes, i, err := u.findByPortalToken(ctx, token)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := appendChat(&quotes[i], entities.ChatSenderCustomer, text); err != nil {
		return entities.Quote{}, err
	}
	if err := u.repo.SaveAll(ctx, quotes); err != nil {
		return entities.Quote{}, err
	}
	return quotes[i], nil
}

func (u *QuoteUseCase) SignByPortalToken(ctx context.Context, token, signature string) (entities.Quote, error) {
	if strings.TrimSpace(signature) == "" {
		return entities.Quote{}, ErrEmptySignature
	}
	quotes, i, err := u.findByPortalToken(ctx, token)
	if err != nil {
		return entities.Quote{}, err
	}
	applySignature(&quotes[i], signature)
	if err := u.repo.SaveAll(ctx, quotes); err != nil {
		return entities.Quote{}, err
	}
	return quotes[i], nil
}
