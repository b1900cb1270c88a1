package bootstrap

import "context"

// AuditLog is a process-level audit event (startup, shutdown), distinct
// from the per-admin-action rows the audit feature stores in the
// database.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
