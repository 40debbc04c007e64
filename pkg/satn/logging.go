package satn

import "go.uber.org/zap"

// logger defaults to a no-op; callers opt in to tag-rejection diagnostics
// from the Sum/Option/ScheduleAt deserialize paths via SetLogger.
var logger *zap.SugaredLogger = zap.NewNop().Sugar()

// SetLogger installs l as the package-level logger. Pass nil to restore
// the no-op default.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		logger = zap.NewNop().Sugar()
		return
	}
	logger = l
}
