package bootstrap

import "context"

// AuditLog is a lifecycle event worth keeping beyond normal request logs.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
