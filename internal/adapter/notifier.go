package adapter

import (
	"context"

	"github.com/MKhiriev/go-recovery-companion/internal/logger"
)

// Notifier receives the human-readable warnings and error entries the API
// attaches to its responses. Implementations must be safe for concurrent use
// and must not block.
type Notifier interface {
	Warning(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

// logNotifier is the default Notifier. It writes messages to the log.
type logNotifier struct {
	logger *logger.Logger
}

func (n *logNotifier) Warning(_ context.Context, message string) {
	n.logger.Warn().Str("func", "logNotifier.Warning").Msg(message)
}

func (n *logNotifier) Error(_ context.Context, message string) {
	n.logger.Error().Str("func", "logNotifier.Error").Msg(message)
}
