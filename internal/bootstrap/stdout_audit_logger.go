package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const serviceName = "go-employees"

// StdoutAuditLogger emits audit entries through the global zap logger under
// the "audit" name, so they land on stdout alongside regular logs but remain
// greppable by logger name.
type StdoutAuditLogger struct{}

func NewStdoutAuditLogger() *StdoutAuditLogger {
	return &StdoutAuditLogger{}
}

func (l *StdoutAuditLogger) Log(ctx context.Context, entry AuditLog) {
	zap.L().Named("audit").Info(entry.Action,
		zap.String("service", serviceName),
		zap.String("occurred_at", time.Now().UTC().Format(time.RFC3339)),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}
