package pairing

import (
	"crypto/sha256"
	"encoding/hex"
)

// GateVerdict is the device gate's decision for one evaluation.
type GateVerdict string

const (
	GateChecking   GateVerdict = "checking"
	GateAuthorized GateVerdict = "authorized"
	GateDenied     GateVerdict = "denied"
)

// DeviceGate decides whether a presented device key unlocks the admin
// surface. It is deterministic: the same marker always yields the same
// verdict, with no caching across evaluations.
type DeviceGate struct {
	// ExpectedDigest is the lowercase hex SHA-256 of the authorized key.
	ExpectedDigest string
}

// Check hashes the presented marker and compares it to the expected digest.
// An absent marker is denied outright.
func (g DeviceGate) Check(marker string) GateVerdict {
	if marker == "" {
		return GateDenied
	}
	if DigestOf(marker) == g.ExpectedDigest {
		return GateAuthorized
	}
	return GateDenied
}

// DigestOf returns the lowercase hex SHA-256 of a device key.
func DigestOf(marker string) string {
	sum := sha256.Sum256([]byte(marker))
	return hex.EncodeToString(sum[:])
}
