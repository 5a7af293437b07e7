// File: koon/models/token.go
package models

import "time"

// PairingToken is a single-use grant that lets a second device claim the
// admin device key. Consumption is modeled as deletion: a claimed token is
// indistinguishable from one that never existed.
type PairingToken struct {
	ID        string    `bson:"id" json:"id"`
	Token     string    `bson:"token" json:"token"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	ExpiresAt time.Time `bson:"expiresAt" json:"expiresAt"`
}

// Expired reports whether the token window has closed at the given instant.
func (t PairingToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// IssueResponse is returned to the issuing (already-authorized) device.
type IssueResponse struct {
	Token      string    `json:"token"`
	ConnectURL string    `json:"connectUrl"`
	QRImageURL string    `json:"qrImageUrl"`
	ExpiresAt  time.Time `json:"expiresAt"`
}

// VerifyResponse is returned to the device that presented a token.
type VerifyResponse struct {
	Status        string `json:"status"` // "success" or "error"
	DeviceKey     string `json:"deviceKey,omitempty"`
	RedirectTo    string `json:"redirectTo,omitempty"`
	RedirectAfter int    `json:"redirectAfterSeconds,omitempty"`
}
