package logging

import "go.uber.org/zap"

// Init installs the global zap logger at the configured level. An unknown
// level string falls back to the production default (info).
func Init(level string) {
	cfg := zap.NewProductionConfig()

	if lvl, err := zap.ParseAtomicLevel(level); err == nil {
		cfg.Level = lvl
	}

	zap.ReplaceGlobals(zap.Must(cfg.Build()))
}
