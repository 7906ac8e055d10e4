package types

// Contains miscellaneous functions and types

import (
	"context"
	"log/slog"
)

// IsContextDone does a quick check on a context to see if its dead.
func IsContextDone(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

// LevelTrace is below slog.LevelDebug, used for per-record logging.
const LevelTrace slog.Level = -8
