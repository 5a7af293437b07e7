// File: koon/utils/auth_session.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// AdminSession represents a signed-in admin on one device.
type AdminSession struct {
	AdminID       string    `json:"adminId"`
	Email         string    `json:"email"`
	DisplayName   string    `json:"displayName"`
	Local         bool      `json:"local"` // true for the local-admin shortcut identity
	IP            string    `json:"ip"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	TokenHash     string    `json:"tokenHash"`
}

// SaveAdminSession saves the admin session in Redis with a TTL.
func SaveAdminSession(client *redis.Client, sessionID string, session AdminSession) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal admin session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, AuthSessionPrefix+sessionID, data, AuthSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save admin session: %w", err)
	}
	return nil
}

// GetAdminSession retrieves the admin session from Redis.
func GetAdminSession(client *redis.Client, sessionID string) (*AdminSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, AuthSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var session AdminSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal admin session: %w", err)
	}
	return &session, nil
}

// DeleteAdminSession removes an admin session from Redis.
func DeleteAdminSession(client *redis.Client, sessionID string) error {
	ctx := context.Background()
	return client.Del(ctx, AuthSessionPrefix+sessionID).Err()
}
