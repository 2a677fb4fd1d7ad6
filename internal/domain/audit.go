package domain

import "time"

// AuditEntry records a mutation against a company's books. The payload
// is free-form JSON describing the change.
type AuditEntry struct {
	ID         string
	CompanyID  string
	EntityType string
	EntityID   string
	Action     string
	Payload    map[string]any
	CreatedAt  time.Time
	CreatedBy  string
}

// Audit entity types.
const (
	AuditEntityCompany    = "company"
	AuditEntityVoucher    = "voucher"
	AuditEntityPeriodLock = "period_lock"
)

// Audit actions.
const (
	AuditActionCreate  = "create"
	AuditActionPost    = "post"
	AuditActionCorrect = "correct"
	AuditActionLock    = "lock"
)
