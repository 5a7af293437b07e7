package pairing

import (
	"context"

	"koon/models"
	"koon/utils"

	"go.uber.org/zap"
)

// RecoverDevice is the operator recovery path for a lost device key. Unlike
// the pairing flow it takes the master key itself, verifies its digest, and
// records every attempt in the audit trail. It is a recovery tool, not a
// security boundary: the gate still re-checks the stored key on every load.
func (s *DefaultPairingService) RecoverDevice(ctx context.Context, candidateKey, ip string) (*models.VerifyResponse, error) {
	logger := utils.GetLogger()

	verdict := s.Gate.Check(candidateKey)
	outcome := models.AuditOutcomeDenied
	if verdict == GateAuthorized {
		outcome = models.AuditOutcomeGranted
	}

	if s.AdminRepo != nil {
		event := models.AuditEvent{
			Action:  models.AuditActionKeyRecovery,
			Outcome: outcome,
			IP:      ip,
		}
		if err := s.AdminRepo.RecordAudit(ctx, event); err != nil {
			logger.Error("RecoverDevice: failed to record audit event", zap.Error(err))
		}
	}

	if verdict != GateAuthorized {
		logger.Warn("RecoverDevice: rejected master key attempt", zap.String("ip", ip))
		return errorResponse(), ErrDigestMismatch
	}

	logger.Info("RecoverDevice: master key accepted", zap.String("ip", ip))
	return &models.VerifyResponse{
		Status:        "success",
		DeviceKey:     candidateKey,
		RedirectTo:    redirectTarget,
		RedirectAfter: redirectDelaySeconds,
	}, nil
}
