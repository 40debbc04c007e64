package sats

import "go.uber.org/zap"

// logger defaults to a no-op so library consumers never get unsolicited
// output; callers that want registry diagnostics opt in via SetLogger.
var logger *zap.SugaredLogger = zap.NewNop().Sugar()

// SetLogger installs l as the package-level logger for registry
// registration and inline-only rejection events (a deduplicated
// registration is not logged). Pass nil to restore the no-op default.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l
}
