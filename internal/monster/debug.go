package monster

import "sync/atomic"

// debugLoggingEnabled gates per-tick slog.Debug calls so the hot path does
// not pay for argument construction when debugging is off.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging toggles debug logging for the behavior controller.
// Called once at startup from the logging config.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled reports whether debug logging is on. Guard expensive calls:
//
//	if monster.IsDebugEnabled() {
//	    slog.Debug("hiding spot chosen", "node", node.ID, "score", score)
//	}
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
