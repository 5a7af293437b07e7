package pairing

import (
	"context"
	"errors"
	"fmt"

	"koon/models"
	"koon/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	redirectTarget       = "/admin/dashboard"
	redirectDelaySeconds = 2
)

// Verify claims a presented token for the given device. The claim is a
// single conditional delete in the store, so exactly one verifier can win a
// token even when two present it concurrently. Every failure cause maps to
// the same error response; only the returned error (logged, never sent)
// says which case occurred.
func (s *DefaultPairingService) Verify(ctx context.Context, presented, deviceID string) (*models.VerifyResponse, error) {
	logger := utils.GetLogger()

	if presented == "" {
		logger.Warn("Verify: no token in request")
		return errorResponse(), ErrTokenNotFound
	}

	claimed, err := s.Repo.Claim(ctx, presented, s.now())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			cause := s.classifyMiss(ctx, presented)
			logger.Warn("Verify: token rejected", zap.String("deviceID", deviceID), zap.Error(cause))
			return errorResponse(), cause
		}
		logger.Error("Verify: token store failure", zap.Error(err))
		return errorResponse(), fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	// Grant. The token is already consumed; recording the credential is
	// best-effort and a failure here must not take the grant back.
	if err := s.Credentials.Set(ctx, deviceID, s.DeviceKey); err != nil {
		logger.Error("Verify: failed to record device credential", zap.String("deviceID", deviceID), zap.Error(err))
	}
	s.auditGrant(ctx, deviceID, claimed)

	return &models.VerifyResponse{
		Status:        "success",
		DeviceKey:     s.DeviceKey,
		RedirectTo:    redirectTarget,
		RedirectAfter: redirectDelaySeconds,
	}, nil
}

// classifyMiss distinguishes an expired token from one that never existed
// (or was already consumed), for operator logs only.
func (s *DefaultPairingService) classifyMiss(ctx context.Context, presented string) error {
	records, err := s.Repo.FindByToken(ctx, presented)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if len(records) > 0 {
		return ErrTokenExpired
	}
	return ErrTokenNotFound
}

func (s *DefaultPairingService) auditGrant(ctx context.Context, deviceID string, claimed *models.PairingToken) {
	if s.AdminRepo == nil {
		return
	}
	event := models.AuditEvent{
		Action:  models.AuditActionPairingGrant,
		Outcome: models.AuditOutcomeGranted,
		Detail:  fmt.Sprintf("device %s paired via token issued at %s", deviceID, claimed.CreatedAt.Format("2006-01-02T15:04:05Z07:00")),
	}
	if err := s.AdminRepo.RecordAudit(ctx, event); err != nil {
		utils.GetLogger().Error("Verify: failed to record grant audit", zap.Error(err))
	}
}

// errorResponse is the single user-visible failure shape for all causes.
func errorResponse() *models.VerifyResponse {
	return &models.VerifyResponse{Status: "error"}
}
