package models

import "time"

// AdminUser is a dashboard operator account.
type AdminUser struct {
	ID           string    `bson:"id" json:"id"`
	Email        string    `bson:"email" json:"email"`
	DisplayName  string    `bson:"displayName" json:"displayName"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	LastLoginAt  time.Time `bson:"lastLoginAt" json:"lastLoginAt"`
}

// AuthResponse is returned after a successful sign-in.
type AuthResponse struct {
	AdminID     string `json:"adminId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Token       string `json:"token"`
	Local       bool   `json:"local,omitempty"`
}

// AuditEvent records a security-relevant operator action, such as a
// break-glass device key recovery attempt.
type AuditEvent struct {
	ID        string    `bson:"id" json:"id"`
	Action    string    `bson:"action" json:"action"`
	Outcome   string    `bson:"outcome" json:"outcome"`
	IP        string    `bson:"ip" json:"ip"`
	Detail    string    `bson:"detail,omitempty" json:"detail,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

const (
	AuditActionKeyRecovery = "device_key_recovery"
	AuditActionPairingGrant = "device_pairing_grant"

	AuditOutcomeGranted = "granted"
	AuditOutcomeDenied  = "denied"
)
