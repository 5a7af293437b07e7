package adminRepo

import (
	"context"

	"koon/models"
)

// AdminRepository owns the admins and audit_events collections.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	TouchLastLogin(ctx context.Context, id string) error

	// RecordAudit appends a security-relevant operator event.
	RecordAudit(ctx context.Context, event models.AuditEvent) error
	// RecentAudits returns the newest audit events, capped at limit.
	RecentAudits(ctx context.Context, limit int) ([]models.AuditEvent, error)
}
