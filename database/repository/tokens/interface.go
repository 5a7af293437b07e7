package tokensRepo

import (
	"context"
	"time"

	"koon/models"
)

// PairingTokenRepository owns the guest_tokens collection. Nothing else
// writes pairing tokens.
type PairingTokenRepository interface {
	// Create inserts a new pairing token. The unique index on the token
	// value rejects the (negligible) chance of a random collision.
	Create(ctx context.Context, token models.PairingToken) error

	// Claim atomically finds and deletes the most recent non-expired record
	// matching the token value. Exactly one caller can win a given token;
	// losers see mongo.ErrNoDocuments.
	Claim(ctx context.Context, token string, now time.Time) (*models.PairingToken, error)

	// FindByToken returns all records matching the token value, newest
	// first. Used only to classify a failed claim for operator logs.
	FindByToken(ctx context.Context, token string) ([]models.PairingToken, error)

	// DeleteExpired removes every record whose window has closed. Returns
	// the number of records swept.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
