package usecase

import (
	"sort"

	"insights-api/internal/dashboard/core/domain"
	"insights-api/internal/dashboard/core/ports"
)

const (
	featureUsageMin = 120
	featureUsageMax = 1400
)

// FeatureUsageRanker produces named usage counters ordered by popularity.
type FeatureUsageRanker struct {
	random ports.RandomPort
}

func NewFeatureUsageRanker(random ports.RandomPort) *FeatureUsageRanker {
	return &FeatureUsageRanker{
		random: random,
	}
}

// Generate returns count entries named by consecutive letters ("Feature A",
// "Feature B", ...), sorted by count descending. The sort is stable, so equal
// counts keep generation order. count <= 0 yields an empty sequence.
func (g *FeatureUsageRanker) Generate(count int) []domain.FeatureUsage {
	if count <= 0 {
		return []domain.FeatureUsage{}
	}

	features := make([]domain.FeatureUsage, 0, count)
	for i := 0; i < count; i++ {
		features = append(features, domain.FeatureUsage{
			Name:  "Feature " + string(rune('A'+i)),
			Count: g.random.IntBetween(featureUsageMin, featureUsageMax),
		})
	}

	sort.SliceStable(features, func(i, j int) bool {
		return features[i].Count > features[j].Count
	})

	return features
}
