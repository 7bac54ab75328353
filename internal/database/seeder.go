package database

import (
	"context"
	"log"

	"github.com/google/uuid"

	"reparo_pro/internal/auth"
	"reparo_pro/internal/domain/entities"
	"reparo_pro/internal/usecase/interfaces"
)

const (
	defaultAdminEmail    = "admin@reparopro.com"
	defaultAdminPassword = "password123"
)

// SeedDefaultAdmin creates the bootstrap admin account when it does not
// exist yet, so a fresh install always has a way to log in.
func SeedDefaultAdmin(repo interfaces.IUserRepository) {
	ctx := context.Background()

	existing, err := repo.GetByEmail(ctx, defaultAdminEmail)
	if err != nil {
		log.Printf("[seed] admin lookup failed: %v", err)
		return
	}
	if existing.ID != "" {
		log.Println("[seed] default admin already exists, skipping")
		return
	}

	log.Println("[seed] default admin not found, seeding")
	hash, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		log.Printf("[seed] password hash failed: %v", err)
		return
	}

	_, err = repo.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		Name:         "Admin",
		Email:        defaultAdminEmail,
		PasswordHash: hash,
		Role:         entities.UserRoleAdmin,
		Status:       entities.UserStatusActive,
	})
	if err != nil {
		log.Printf("[seed] default admin create failed: %v", err)
		return
	}
	log.Println("[seed] default admin seeded")
}
