package usecase

import "insights-api/internal/dashboard/core/domain"

// trafficVolumes aligns index-wise with domain.TrafficCategories.
var trafficVolumes = [4]int{5200, 2800, 1800, 1400}

// TrafficMixProvider supplies the session breakdown by origin. Its categories
// are the same universe the recent-activity records cycle through.
type TrafficMixProvider struct{}

// Provide returns one entry per category, in enumeration order.
func (TrafficMixProvider) Provide() []domain.TrafficSource {
	sources := make([]domain.TrafficSource, 0, len(domain.TrafficCategories))
	for i, category := range domain.TrafficCategories {
		sources = append(sources, domain.TrafficSource{
			Name:  category,
			Value: trafficVolumes[i],
		})
	}
	return sources
}
