package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"reparo_pro/internal/auth"
	"reparo_pro/internal/domain/entities"
	"reparo_pro/internal/usecase/interfaces"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidUserPayload = errors.New("user requires name, email and a valid role")
)

// IUserUseCase manages staff accounts and login sessions. All management
// operations are admin-only; Authenticate is public.

type IUserUseCase interface {
	Authenticate(ctx context.Context, email, password string) (entities.User, string, error)
	Create(ctx context.Context, actor entities.Actor, u entities.User, password string) (entities.User, error)
	SetStatus(ctx context.Context, actor entities.Actor, id string, status entities.UserStatus) (entities.User, error)
	List(ctx context.Context, actor entities.Actor) ([]entities.User, error)
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Authenticate verifies the credentials, stamps the last login and issues a
// session token. Inactive accounts are rejected even with a valid password.
func (u *UserUseCase) Authenticate(ctx context.Context, email, password string) (entities.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return entities.User{}, "", ErrInvalidCredentials
	}

	user, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.User{}, "", err
	}
	if user.ID == "" || !auth.CheckPasswordHash(password, user.PasswordHash) {
		return entities.User{}, "", ErrInvalidCredentials
	}
	if user.Status == entities.UserStatusInactive {
		return entities.User{}, "", ErrUserInactive
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	if user, err = u.repo.Update(ctx, user); err != nil {
		return entities.User{}, "", err
	}

	token, err := auth.GenerateJWT(user)
	if err != nil {
		log.Printf("[user][usecase] token generation failed: %v", err)
		return entities.User{}, "", err
	}
	return user, token, nil
}

func (u *UserUseCase) Create(ctx context.Context, actor entities.Actor, user entities.User, password string) (entities.User, error) {
	if actor.Role != entities.UserRoleAdmin {
		return entities.User{}, ErrForbidden
	}
	user.Name = strings.TrimSpace(user.Name)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Name == "" || user.Email == "" || !user.Role.Valid() || password == "" {
		return entities.User{}, ErrInvalidUserPayload
	}

	if existing, err := u.repo.GetByEmail(ctx, user.Email); err != nil {
		return entities.User{}, err
	} else if existing.ID != "" {
		return entities.User{}, ErrEmailTaken
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return entities.User{}, err
	}
	user.ID = uuid.NewString()
	user.PasswordHash = hash
	user.Status = entities.UserStatusActive
	return u.repo.Create(ctx, user)
}

func (u *UserUseCase) SetStatus(ctx context.Context, actor entities.Actor, id string, status entities.UserStatus) (entities.User, error) {
	if actor.Role != entities.UserRoleAdmin {
		return entities.User{}, ErrForbidden
	}
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	user.Status = status
	return u.repo.Update(ctx, user)
}

func (u *UserUseCase) List(ctx context.Context, actor entities.Actor) ([]entities.User, error) {
	if actor.Role != entities.UserRoleAdmin {
		return nil, ErrForbidden
	}
	return u.repo.List(ctx)
}
