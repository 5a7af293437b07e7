package pairing

import "errors"

// Error taxonomy for the pairing protocol. These are logged for operators
// only; every failure collapses to the same response payload so a consumed
// token is indistinguishable from a forged one.
var (
	ErrTokenNotFound  = errors.New("pairing token not found")
	ErrTokenExpired   = errors.New("pairing token expired")
	ErrPersistence    = errors.New("pairing token store unavailable")
	ErrDigestMismatch = errors.New("device key digest mismatch")
)
