package usecase

import (
	"fmt"

	"insights-api/internal/dashboard/core/domain"
	"insights-api/internal/dashboard/core/ports"
)

// ActivitySynthesizer produces the bounded recent-activity feed. Source and
// status cycle positionally through the shared enumerations, so consecutive
// records never repeat within a cycle length.
type ActivitySynthesizer struct {
	clock ports.ClockPort
}

func NewActivitySynthesizer(clock ports.ClockPort) *ActivitySynthesizer {
	return &ActivitySynthesizer{
		clock: clock,
	}
}

// Generate returns count records keyed by 1-based index: record i is dated i
// days before the current UTC date and takes the (i-1) mod 4 entry of each
// enumeration. count <= 0 yields an empty sequence.
func (g *ActivitySynthesizer) Generate(count int) []domain.ActivityRecord {
	if count <= 0 {
		return []domain.ActivityRecord{}
	}

	now := g.clock.Now().UTC()
	records := make([]domain.ActivityRecord, 0, count)

	for i := 1; i <= count; i++ {
		records = append(records, domain.ActivityRecord{
			Name:   fmt.Sprintf("User %d", i),
			Email:  fmt.Sprintf("user%d@example.com", i),
			Date:   now.AddDate(0, 0, -i).Format(domain.DateFormat),
			Source: domain.TrafficCategories[(i-1)%len(domain.TrafficCategories)],
			Status: domain.ActivityStatuses[(i-1)%len(domain.ActivityStatuses)],
		})
	}

	return records
}
