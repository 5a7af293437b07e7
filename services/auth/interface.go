package auth

import (
	"context"

	adminRepo "koon/database/repository/admin"
	"koon/models"

	"github.com/go-redis/redis/v8"
)

// AuthService signs dashboard operators in and out.
type AuthService interface {
	SignIn(ctx context.Context, email, password, ip string) (*models.AuthResponse, error)
	SignOut(ctx context.Context, adminID string) error
}

// DefaultAuthService is the production implementation.
type DefaultAuthService struct {
	Repo     adminRepo.AdminRepository
	Sessions *redis.Client

	// AllowLocalAdmin enables the admin/admin123 shortcut identity that
	// skips the admins collection entirely. Development only.
	AllowLocalAdmin bool
}
