package pairing

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/url"
	"time"

	"koon/models"
	"koon/utils"

	"go.uber.org/zap"
)

const (
	// tokenByteLen gives 48 hex characters; collisions are negligible at
	// this length, unlike the 6-digit numeric codes this flow replaced.
	tokenByteLen = 24

	// pairingTokenTTL is the fixed validity window for issued tokens.
	pairingTokenTTL = 5 * time.Minute

	// qrEndpoint renders the connect URL as a scannable image. It only ever
	// sees what is already in the URL.
	qrEndpoint = "https://api.qrserver.com/v1/create-qr-code/?size=250x250&data="
)

// GenerateTokenValue draws a fresh 48-hex-character token from the
// cryptographic random source.
func GenerateTokenValue() (string, error) {
	buf := make([]byte, tokenByteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// IssueToken mints a pairing token, persists it with a five minute window,
// and returns the connect and QR URLs for out-of-band transfer. A failed
// persist leaves no partial state and is not retried.
func (s *DefaultPairingService) IssueToken(ctx context.Context) (*models.IssueResponse, error) {
	value, err := GenerateTokenValue()
	if err != nil {
		return nil, err
	}

	now := s.now()
	record := models.PairingToken{
		Token:     value,
		CreatedAt: now,
		ExpiresAt: now.Add(pairingTokenTTL),
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		utils.GetLogger().Error("IssueToken: failed to persist pairing token", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	connectURL := fmt.Sprintf("%s/admin-connect?token=%s", s.Origin, value)
	return &models.IssueResponse{
		Token:      value,
		ConnectURL: connectURL,
		QRImageURL: qrEndpoint + url.QueryEscape(connectURL),
		ExpiresAt:  record.ExpiresAt,
	}, nil
}
