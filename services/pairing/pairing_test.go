package pairing

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"koon/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeTokenRepo mirrors the conditional-delete semantics of the Mongo repo
// in memory, including the losing-claimer error.
type fakeTokenRepo struct {
	mu      sync.Mutex
	records map[string]models.PairingToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{records: make(map[string]models.PairingToken)}
}

func (r *fakeTokenRepo) Create(_ context.Context, token models.PairingToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[token.Token] = token
	return nil
}

func (r *fakeTokenRepo) Claim(_ context.Context, token string, now time.Time) (*models.PairingToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[token]
	if !ok || rec.Expired(now) {
		return nil, mongo.ErrNoDocuments
	}
	delete(r.records, token)
	return &rec, nil
}

func (r *fakeTokenRepo) FindByToken(_ context.Context, token string) ([]models.PairingToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rec, ok := r.records[token]; ok {
		return []models.PairingToken{rec}, nil
	}
	return nil, nil
}

func (r *fakeTokenRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for k, rec := range r.records {
		if rec.Expired(now) {
			delete(r.records, k)
			n++
		}
	}
	return n, nil
}

type fakeCredentialStore struct {
	mu    sync.Mutex
	creds map[string]string
}

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{creds: make(map[string]string)}
}

func (s *fakeCredentialStore) Get(_ context.Context, deviceID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.creds[deviceID]
	if !ok {
		return "", ErrNoCredential
	}
	return val, nil
}

func (s *fakeCredentialStore) Set(_ context.Context, deviceID, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds[deviceID] = key
	return nil
}

func (s *fakeCredentialStore) Clear(_ context.Context, deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.creds, deviceID)
	return nil
}

type fakeAdminRepo struct {
	mu     sync.Mutex
	events []models.AuditEvent
}

func (r *fakeAdminRepo) GetByEmail(context.Context, string) (*models.AdminUser, error) {
	return nil, nil
}

func (r *fakeAdminRepo) TouchLastLogin(context.Context, string) error { return nil }

func (r *fakeAdminRepo) RecordAudit(_ context.Context, event models.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *fakeAdminRepo) RecentAudits(context.Context, int) ([]models.AuditEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.AuditEvent, len(r.events))
	copy(out, r.events)
	return out, nil
}

const (
	testDeviceKey = "MAC_BOOK_PRO_SECURE_ID_9928374"
	testOrigin    = "https://admin.example.com"
)

func newTestService(now time.Time) (*DefaultPairingService, *fakeTokenRepo, *fakeCredentialStore, *fakeAdminRepo) {
	repo := newFakeTokenRepo()
	creds := newFakeCredentialStore()
	admins := &fakeAdminRepo{}
	svc := &DefaultPairingService{
		Repo:        repo,
		Credentials: creds,
		AdminRepo:   admins,
		Gate:        DeviceGate{ExpectedDigest: DigestOf(testDeviceKey)},
		Origin:      testOrigin,
		DeviceKey:   testDeviceKey,
		Now:         func() time.Time { return now },
	}
	return svc, repo, creds, admins
}

func TestGenerateTokenValue(t *testing.T) {
	hexPattern := regexp.MustCompile(`^[0-9a-f]{48}$`)

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		val, err := GenerateTokenValue()
		require.NoError(t, err)
		require.Regexp(t, hexPattern, val)
		_, dup := seen[val]
		require.False(t, dup, "duplicate token value generated")
		seen[val] = struct{}{}
	}
}

func TestIssueToken(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc, repo, _, _ := newTestService(t0)

	resp, err := svc.IssueToken(context.Background())
	require.NoError(t, err)

	assert.Len(t, resp.Token, 48)
	assert.Equal(t, testOrigin+"/admin-connect?token="+resp.Token, resp.ConnectURL)
	assert.Contains(t, resp.QRImageURL, "https://api.qrserver.com/v1/create-qr-code/?size=250x250&data=")
	assert.Equal(t, t0.Add(5*time.Minute), resp.ExpiresAt)

	stored, ok := repo.records[resp.Token]
	require.True(t, ok, "token was not persisted")
	assert.Equal(t, t0, stored.CreatedAt)
}

func TestVerify(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("grants before expiry", func(t *testing.T) {
		svc, _, creds, admins := newTestService(t0)
		issued, err := svc.IssueToken(ctx)
		require.NoError(t, err)

		svc.Now = func() time.Time { return t0.Add(10 * time.Second) }
		resp, err := svc.Verify(ctx, issued.Token, "device-b")
		require.NoError(t, err)

		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, testDeviceKey, resp.DeviceKey)
		assert.Equal(t, "/admin/dashboard", resp.RedirectTo)
		assert.Equal(t, 2, resp.RedirectAfter)

		got, err := creds.Get(ctx, "device-b")
		require.NoError(t, err)
		assert.Equal(t, testDeviceKey, got)

		events, err := admins.RecentAudits(ctx, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, models.AuditActionPairingGrant, events[0].Action)
		assert.Equal(t, models.AuditOutcomeGranted, events[0].Outcome)
	})

	t.Run("grants at twenty seconds", func(t *testing.T) {
		svc, _, _, _ := newTestService(t0)
		issued, err := svc.IssueToken(ctx)
		require.NoError(t, err)

		svc.Now = func() time.Time { return t0.Add(20 * time.Second) }
		resp, err := svc.Verify(ctx, issued.Token, "device-b")
		require.NoError(t, err)
		assert.Equal(t, "success", resp.Status)
	})

	t.Run("rejects after expiry", func(t *testing.T) {
		svc, _, creds, _ := newTestService(t0)
		issued, err := svc.IssueToken(ctx)
		require.NoError(t, err)

		svc.Now = func() time.Time { return t0.Add(5*time.Minute + time.Second) }
		resp, err := svc.Verify(ctx, issued.Token, "device-b")
		assert.ErrorIs(t, err, ErrTokenExpired)
		assert.Equal(t, "error", resp.Status)
		assert.Empty(t, resp.DeviceKey)

		_, err = creds.Get(ctx, "device-b")
		assert.ErrorIs(t, err, ErrNoCredential)
	})

	t.Run("rejects at exact expiry instant", func(t *testing.T) {
		svc, _, _, _ := newTestService(t0)
		issued, err := svc.IssueToken(ctx)
		require.NoError(t, err)

		svc.Now = func() time.Time { return issued.ExpiresAt }
		resp, err := svc.Verify(ctx, issued.Token, "device-b")
		assert.ErrorIs(t, err, ErrTokenExpired)
		assert.Equal(t, "error", resp.Status)
	})

	t.Run("second presentation loses", func(t *testing.T) {
		svc, _, _, _ := newTestService(t0)
		issued, err := svc.IssueToken(ctx)
		require.NoError(t, err)

		svc.Now = func() time.Time { return t0.Add(10 * time.Second) }
		_, err = svc.Verify(ctx, issued.Token, "device-b")
		require.NoError(t, err)

		resp, err := svc.Verify(ctx, issued.Token, "device-c")
		assert.ErrorIs(t, err, ErrTokenNotFound)
		assert.Equal(t, "error", resp.Status)
	})

	t.Run("never-issued token matches consumed-token response", func(t *testing.T) {
		svc, _, _, _ := newTestService(t0)
		resp, err := svc.Verify(ctx, "0000000000000000000000000000000000000000deadbeef", "device-b")
		assert.ErrorIs(t, err, ErrTokenNotFound)
		assert.Equal(t, errorResponse(), resp)
	})

	t.Run("empty token", func(t *testing.T) {
		svc, _, _, _ := newTestService(t0)
		resp, err := svc.Verify(ctx, "", "device-b")
		assert.ErrorIs(t, err, ErrTokenNotFound)
		assert.Equal(t, "error", resp.Status)
	})

	t.Run("concurrent claims grant exactly once", func(t *testing.T) {
		svc, _, _, _ := newTestService(t0)
		issued, err := svc.IssueToken(ctx)
		require.NoError(t, err)
		svc.Now = func() time.Time { return t0.Add(time.Second) }

		const claimers = 16
		var wg sync.WaitGroup
		successes := make(chan string, claimers)
		for i := 0; i < claimers; i++ {
			wg.Add(1)
			go func(id int) {
				defer wg.Done()
				resp, err := svc.Verify(ctx, issued.Token, "device")
				if err == nil && resp.Status == "success" {
					successes <- resp.DeviceKey
				}
			}(i)
		}
		wg.Wait()
		close(successes)

		var granted int
		for key := range successes {
			granted++
			assert.Equal(t, testDeviceKey, key)
		}
		assert.Equal(t, 1, granted)
	})
}

func TestRecoverDevice(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("correct master key", func(t *testing.T) {
		svc, _, _, admins := newTestService(t0)
		resp, err := svc.RecoverDevice(ctx, testDeviceKey, "203.0.113.7")
		require.NoError(t, err)
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, testDeviceKey, resp.DeviceKey)

		events, _ := admins.RecentAudits(ctx, 10)
		require.Len(t, events, 1)
		assert.Equal(t, models.AuditActionKeyRecovery, events[0].Action)
		assert.Equal(t, models.AuditOutcomeGranted, events[0].Outcome)
		assert.Equal(t, "203.0.113.7", events[0].IP)
	})

	t.Run("wrong key is denied and audited", func(t *testing.T) {
		svc, _, _, admins := newTestService(t0)
		resp, err := svc.RecoverDevice(ctx, "not-the-key", "203.0.113.7")
		assert.ErrorIs(t, err, ErrDigestMismatch)
		assert.Equal(t, "error", resp.Status)
		assert.Empty(t, resp.DeviceKey)

		events, _ := admins.RecentAudits(ctx, 10)
		require.Len(t, events, 1)
		assert.Equal(t, models.AuditOutcomeDenied, events[0].Outcome)
	})
}
