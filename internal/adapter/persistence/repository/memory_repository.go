package repository

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"reparo_pro/internal/domain/entities"
	"reparo_pro/internal/usecase/interfaces"
)

// IsStorageMock reports whether the in-memory repositories should be used
// instead of DynamoDB. Accepted truthy values: "1", "true", "yes", "on",
// "mock".
func IsStorageMock() bool {
	switch strings.ToLower(strings.TrimSpace(getenvDefault("STORAGE_MOCK", ""))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

// QuoteMemoryRepository keeps the quote collection in process memory. Used
// for local runs and tests (STORAGE_MOCK). Values are deep-copied through
// JSON so callers never share backing slices with the store.

type QuoteMemoryRepository struct {
	mu     sync.RWMutex
	quotes []entities.Quote
}

var _ interfaces.IQuoteRepository = (*QuoteMemoryRepository)(nil)

func NewQuoteMemoryRepository() *QuoteMemoryRepository {
	return &QuoteMemoryRepository{quotes: []entities.Quote{}}
}

func (r *QuoteMemoryRepository) LoadAll(ctx context.Context) ([]entities.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return deepCopy(r.quotes)
}

func (r *QuoteMemoryRepository) SaveAll(ctx context.Context, quotes []entities.Quote) error {
	copied, err := deepCopy(quotes)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quotes = copied
	return nil
}

func deepCopy(quotes []entities.Quote) ([]entities.Quote, error) {
	raw, err := json.Marshal(quotes)
	if err != nil {
		return nil, err
	}
	out := []entities.Quote{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UserMemoryRepository keeps staff accounts in process memory (STORAGE_MOCK).

type UserMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]entities.User
}

var _ interfaces.IUserRepository = (*UserMemoryRepository)(nil)

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{users: map[string]entities.User{}}
}

func (r *UserMemoryRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return u, nil
}

func (r *UserMemoryRepository) Update(ctx context.Context, u entities.User) (entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return u, nil
}

func (r *UserMemoryRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.users[id], nil
}

func (r *UserMemoryRepository) GetByEmail(ctx context.Context, email string) (entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return entities.User{}, nil
}

func (r *UserMemoryRepository) List(ctx context.Context) ([]entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]entities.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, nil
}
