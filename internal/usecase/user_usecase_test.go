package usecase

import (
	"context"
	"errors"
	"testing"

	"reparo_pro/internal/auth"
	"reparo_pro/internal/domain/entities"
	mock_interfaces "reparo_pro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func hashedUser(t *testing.T, password string, status entities.UserStatus) entities.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return entities.User{
		ID:           "u1",
		Name:         "Ana",
		Email:        "ana@reparopro.com",
		PasswordHash: hash,
		Role:         entities.UserRoleEstimator,
		Status:       status,
	}
}

func TestUserUseCase_Authenticate(t *testing.T) {
	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		repo.EXPECT().GetByEmail(gomock.Any(), "ana@reparopro.com").Return(hashedUser(t, "certa", entities.UserStatusActive), nil)
		uc := NewUserUseCase(repo)

		_, _, err := uc.Authenticate(context.Background(), "ana@reparopro.com", "errada")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		repo.EXPECT().GetByEmail(gomock.Any(), "nope@reparopro.com").Return(entities.User{}, nil)
		uc := NewUserUseCase(repo)

		_, _, err := uc.Authenticate(context.Background(), "nope@reparopro.com", "x")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("inactive account rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		repo.EXPECT().GetByEmail(gomock.Any(), "ana@reparopro.com").Return(hashedUser(t, "senha", entities.UserStatusInactive), nil)
		uc := NewUserUseCase(repo)

		_, _, err := uc.Authenticate(context.Background(), "ana@reparopro.com", "senha")
		if !errors.Is(err, ErrUserInactive) {
			t.Fatalf("expected ErrUserInactive, got %v", err)
		}
	})

	t.Run("success stamps last login and issues token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		repo.EXPECT().GetByEmail(gomock.Any(), "ana@reparopro.com").Return(hashedUser(t, "senha", entities.UserStatusActive), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
			if u.LastLogin == nil {
				t.Fatal("expected last login stamped")
			}
			return u, nil
		})
		uc := NewUserUseCase(repo)

		user, token, err := uc.Authenticate(context.Background(), "Ana@ReparoPro.com", "senha")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" {
			t.Fatal("expected session token")
		}
		actor, err := auth.ParseJWT(token)
		if err != nil {
			t.Fatalf("token does not parse: %v", err)
		}
		if actor.ID != user.ID || actor.Role != entities.UserRoleEstimator {
			t.Fatalf("unexpected actor in token: %+v", actor)
		}
	})
}

func TestUserUseCase_Create(t *testing.T) {
	t.Run("non-admin forbidden", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.Create(context.Background(), estimatorActor, entities.User{}, "x")
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.Create(context.Background(), adminActor, entities.User{Name: "X", Email: "x@y.z", Role: "boss"}, "pw")
		if !errors.Is(err, ErrInvalidUserPayload) {
			t.Fatalf("expected ErrInvalidUserPayload, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		repo.EXPECT().GetByEmail(gomock.Any(), "ana@reparopro.com").Return(entities.User{ID: "existing"}, nil)
		uc := NewUserUseCase(repo)

		_, err := uc.Create(context.Background(), adminActor, entities.User{
			Name: "Ana", Email: "ana@reparopro.com", Role: entities.UserRoleViewer,
		}, "pw")
		if !errors.Is(err, ErrEmailTaken) {
			t.Fatalf("expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("creates active user with hashed password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		repo.EXPECT().GetByEmail(gomock.Any(), "novo@reparopro.com").Return(entities.User{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
			return u, nil
		})
		uc := NewUserUseCase(repo)

		user, err := uc.Create(context.Background(), adminActor, entities.User{
			Name: "Novo", Email: "Novo@ReparoPro.com", Role: entities.UserRoleEstimator,
		}, "segredo")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID == "" || user.Status != entities.UserStatusActive {
			t.Fatalf("expected minted active user, got %+v", user)
		}
		if user.Email != "novo@reparopro.com" {
			t.Fatalf("expected normalized email, got %s", user.Email)
		}
		if !auth.CheckPasswordHash("segredo", user.PasswordHash) {
			t.Fatal("expected bcrypt hash of the password")
		}
	})
}

func TestUserUseCase_SetStatus(t *testing.T) {
	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.User{}, nil)
		uc := NewUserUseCase(repo)

		_, err := uc.SetStatus(context.Background(), adminActor, "nope", entities.UserStatusInactive)
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("deactivates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		repo.EXPECT().GetByID(gomock.Any(), "u1").Return(entities.User{ID: "u1", Status: entities.UserStatusActive}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u entities.User) (entities.User, error) {
			return u, nil
		})
		uc := NewUserUseCase(repo)

		user, err := uc.SetStatus(context.Background(), adminActor, "u1", entities.UserStatusInactive)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Status != entities.UserStatusInactive {
			t.Fatalf("expected inactive, got %s", user.Status)
		}
	})
}

func TestUserUseCase_List(t *testing.T) {
	t.Run("admin only", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.List(context.Background(), viewerActor)
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}
