package usecase

import (
	"context"

	"insights-api/internal/status/core/domain"
	"insights-api/internal/status/core/ports"
)

const (
	collectionsLimit = 10
	errorDisplayMax  = 50
)

// CheckStatusUseCase reports backend and data-store availability. Probe
// failures are part of the report, not errors: every outcome renders as a
// display string. A nil probe means no store is configured.
type CheckStatusUseCase struct {
	probe          ports.StoreProbePort
	urlConfigured  bool
	nameConfigured bool
}

func NewCheckStatusUseCase(probe ports.StoreProbePort, urlConfigured, nameConfigured bool) *CheckStatusUseCase {
	return &CheckStatusUseCase{
		probe:          probe,
		urlConfigured:  urlConfigured,
		nameConfigured: nameConfigured,
	}
}

func (uc *CheckStatusUseCase) Execute(ctx context.Context) domain.StatusReport {
	report := domain.StatusReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		DatabaseURL:      setLabel(uc.urlConfigured),
		DatabaseName:     setLabel(uc.nameConfigured),
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if uc.probe == nil {
		return report
	}

	if err := uc.probe.Ping(ctx); err != nil {
		report.Database = "❌ Error: " + truncateError(err)
		return report
	}

	report.ConnectionStatus = "Connected"

	tables, err := uc.probe.ListTables(ctx, collectionsLimit)
	if err != nil {
		report.Database = "⚠️  Connected but Error: " + truncateError(err)
		return report
	}

	report.Database = "✅ Connected & Working"
	report.Collections = tables
	return report
}

func setLabel(configured bool) string {
	if configured {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// truncateError keeps probe failures display-sized without splitting a rune.
func truncateError(err error) string {
	msg := []rune(err.Error())
	if len(msg) > errorDisplayMax {
		msg = msg[:errorDisplayMax]
	}
	return string(msg)
}
