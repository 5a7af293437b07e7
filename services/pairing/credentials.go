package pairing

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

const credentialKeyPrefix = "deviceKey:"

// ErrNoCredential is returned when a device has no stored credential.
var ErrNoCredential = errors.New("no credential stored for device")

// CredentialStore abstracts the durable storage a paired device's key lives
// in, so the verifier and gate can be tested against a fake instead of a
// real persistent global. The production store doubles as the server-side
// record of which devices have been granted the key.
type CredentialStore interface {
	Get(ctx context.Context, deviceID string) (string, error)
	Set(ctx context.Context, deviceID, key string) error
	Clear(ctx context.Context, deviceID string) error
}

type redisCredentialStore struct {
	client *redis.Client
}

// NewRedisCredentialStore returns a CredentialStore backed by Redis.
// Entries never expire; a granted device stays granted until revoked.
func NewRedisCredentialStore(client *redis.Client) CredentialStore {
	return &redisCredentialStore{client: client}
}

func (s *redisCredentialStore) Get(ctx context.Context, deviceID string) (string, error) {
	val, err := s.client.Get(ctx, credentialKeyPrefix+deviceID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNoCredential
		}
		return "", err
	}
	return val, nil
}

func (s *redisCredentialStore) Set(ctx context.Context, deviceID, key string) error {
	return s.client.Set(ctx, credentialKeyPrefix+deviceID, key, 0).Err()
}

func (s *redisCredentialStore) Clear(ctx context.Context, deviceID string) error {
	return s.client.Del(ctx, credentialKeyPrefix+deviceID).Err()
}
