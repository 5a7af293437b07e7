package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"koon/models"
	"koon/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	localAdminUser     = "admin"
	localAdminPassword = "admin123"
	localAdminID       = "admin-local"
	localAdminEmail    = "admin@bau.koon"

	sessionTokenTTL = 12 * time.Hour
)

// SignIn authenticates an operator and returns a signed session token.
func (s *DefaultAuthService) SignIn(ctx context.Context, email, password, ip string) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	if s.AllowLocalAdmin && email == localAdminUser && password == localAdminPassword {
		logger.Warn("SignIn: local admin shortcut used", zap.String("ip", ip))
		return s.establishSession(localAdminID, localAdminEmail, "Admin (Local)", ip, true)
	}

	admin, err := s.Repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		logger.Error("SignIn: failed to fetch admin", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if admin == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := s.Repo.TouchLastLogin(ctx, admin.ID); err != nil {
		logger.Warn("SignIn: failed to update last login", zap.String("adminID", admin.ID), zap.Error(err))
	}

	return s.establishSession(admin.ID, admin.Email, admin.DisplayName, ip, false)
}

func (s *DefaultAuthService) establishSession(adminID, email, displayName, ip string, local bool) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(adminID, email, sessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	session := utils.AdminSession{
		AdminID:     adminID,
		Email:       email,
		DisplayName: displayName,
		Local:       local,
		IP:          ip,
		CreatedAt:   time.Now(),
		TokenHash:   utils.HashToken(token),
	}
	if err := utils.SaveAdminSession(s.Sessions, adminID, session); err != nil {
		return nil, fmt.Errorf("failed to create admin session: %w", err)
	}

	return &models.AuthResponse{
		AdminID:     adminID,
		Email:       email,
		DisplayName: displayName,
		Token:       token,
		Local:       local,
	}, nil
}

// SignOut drops the cached session, invalidating the operator's token.
func (s *DefaultAuthService) SignOut(ctx context.Context, adminID string) error {
	if err := utils.DeleteAdminSession(s.Sessions, adminID); err != nil {
		return fmt.Errorf("failed to delete admin session: %w", err)
	}
	return nil
}
