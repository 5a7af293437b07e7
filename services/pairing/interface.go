package pairing

import (
	"context"
	"time"

	adminRepo "koon/database/repository/admin"
	tokensRepo "koon/database/repository/tokens"
	"koon/models"
)

// PairingService issues and consumes single-use device pairing tokens.
type PairingService interface {
	// IssueToken mints a pairing token valid for five minutes and returns
	// it with its connect URL and QR rendering URL.
	IssueToken(ctx context.Context) (*models.IssueResponse, error)

	// Verify claims a presented token for the given device. On success the
	// device receives the shared device key; the token is consumed in the
	// same store operation.
	Verify(ctx context.Context, presented, deviceID string) (*models.VerifyResponse, error)

	// RecoverDevice is the audited break-glass path: it checks a candidate
	// master key against the expected digest and records the attempt.
	RecoverDevice(ctx context.Context, candidateKey, ip string) (*models.VerifyResponse, error)
}

// DefaultPairingService is the production implementation.
type DefaultPairingService struct {
	Repo        tokensRepo.PairingTokenRepository
	Credentials CredentialStore
	AdminRepo   adminRepo.AdminRepository
	Gate        DeviceGate

	// Origin is the public origin the connect URL is built from.
	Origin string
	// DeviceKey is the shared secret granted to paired devices.
	DeviceKey string

	// Now overrides the clock in tests. Nil means time.Now.
	Now func() time.Time
}

func (s *DefaultPairingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
