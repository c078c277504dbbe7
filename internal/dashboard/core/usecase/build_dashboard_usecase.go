package usecase

import (
	"context"

	"insights-api/internal/dashboard/core/domain"
	"insights-api/internal/dashboard/core/ports"
)

// Section sizes of the assembled payload.
const (
	DefaultSeriesDays   = 30
	DefaultFeatureCount = 10
	DefaultRecentCount  = 12
)

// lastUpdatedLayout is stamped in UTC with a literal "Z" appended; the
// client expects the offset-free shape with microsecond precision.
const lastUpdatedLayout = "2006-01-02T15:04:05.000000"

type BuildDashboardInput struct {
	Range string
}

// BuildDashboardUseCase composes the generators into one payload. Everything
// is built fresh per call; nothing is retained between requests.
type BuildDashboardUseCase struct {
	clock    ports.ClockPort
	series   *SeriesGenerator
	features *FeatureUsageRanker
	kpis     KPICatalog
	traffic  TrafficMixProvider
	recent   *ActivitySynthesizer
}

func NewBuildDashboardUseCase(clock ports.ClockPort, random ports.RandomPort) *BuildDashboardUseCase {
	return &BuildDashboardUseCase{
		clock:    clock,
		series:   NewSeriesGenerator(clock, random),
		features: NewFeatureUsageRanker(random),
		recent:   NewActivitySynthesizer(clock),
	}
}

// Execute builds the payload for a single request. The range label is opaque
// to the generators and echoed back verbatim.
func (uc *BuildDashboardUseCase) Execute(ctx context.Context, in BuildDashboardInput) (*domain.DashboardPayload, error) {
	payload := &domain.DashboardPayload{
		Range:       in.Range,
		KPIs:        uc.kpis.Build(),
		Series:      uc.series.Generate(DefaultSeriesDays),
		Features:    uc.features.Generate(DefaultFeatureCount),
		Traffic:     uc.traffic.Provide(),
		Recent:      uc.recent.Generate(DefaultRecentCount),
		LastUpdated: uc.clock.Now().UTC().Format(lastUpdatedLayout) + "Z",
	}

	return payload, nil
}
