package auth

import (
	"context"
	"testing"

	"koon/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeAdminRepo struct {
	admins map[string]models.AdminUser
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*models.AdminUser, error) {
	if a, ok := r.admins[email]; ok {
		return &a, nil
	}
	return nil, nil
}

func (r *fakeAdminRepo) TouchLastLogin(context.Context, string) error { return nil }

func (r *fakeAdminRepo) RecordAudit(context.Context, models.AuditEvent) error { return nil }

func (r *fakeAdminRepo) RecentAudits(context.Context, int) ([]models.AuditEvent, error) {
	return nil, nil
}

func TestSignInRejections(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &fakeAdminRepo{admins: map[string]models.AdminUser{
		"ops@bau.koon": {ID: "a1", Email: "ops@bau.koon", PasswordHash: string(hash)},
	}}

	t.Run("unknown email", func(t *testing.T) {
		svc := &DefaultAuthService{Repo: repo}
		_, err := svc.SignIn(ctx, "nobody@bau.koon", "whatever", "127.0.0.1")
		assert.Error(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc := &DefaultAuthService{Repo: repo}
		_, err := svc.SignIn(ctx, "ops@bau.koon", "wrong-horse", "127.0.0.1")
		assert.Error(t, err)
	})

	t.Run("local shortcut rejected when disabled", func(t *testing.T) {
		svc := &DefaultAuthService{Repo: repo, AllowLocalAdmin: false}
		_, err := svc.SignIn(ctx, "admin", "admin123", "127.0.0.1")
		assert.Error(t, err)
	})
}
