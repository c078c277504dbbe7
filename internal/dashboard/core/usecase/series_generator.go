package usecase

import (
	"insights-api/internal/dashboard/core/domain"
	"insights-api/internal/dashboard/core/ports"
)

const (
	seriesBaseUsers    = 800
	seriesBaseSessions = 1200
	usersTrendStep     = 7
	sessionsTrendStep  = 10
	usersNoiseRange    = 60
	sessionsNoiseRange = 90
)

// SeriesGenerator produces the day-indexed users/sessions sequence: a linear
// upward trend plus bounded noise per point, clamped at zero.
type SeriesGenerator struct {
	clock  ports.ClockPort
	random ports.RandomPort
}

func NewSeriesGenerator(clock ports.ClockPort, random ports.RandomPort) *SeriesGenerator {
	return &SeriesGenerator{
		clock:  clock,
		random: random,
	}
}

// Generate returns exactly days points, oldest first, ending one day before
// the current UTC date. days <= 0 yields an empty sequence.
func (g *SeriesGenerator) Generate(days int) []domain.TimeSeriesPoint {
	if days <= 0 {
		return []domain.TimeSeriesPoint{}
	}

	now := g.clock.Now().UTC()
	points := make([]domain.TimeSeriesPoint, 0, days)

	for i := 0; i < days; i++ {
		users := seriesBaseUsers + i*usersTrendStep + g.random.IntBetween(-usersNoiseRange, usersNoiseRange)
		sessions := seriesBaseSessions + i*sessionsTrendStep + g.random.IntBetween(-sessionsNoiseRange, sessionsNoiseRange)

		points = append(points, domain.TimeSeriesPoint{
			Date:     now.AddDate(0, 0, -(days - i)).Format(domain.DateFormat),
			Users:    max(0, users),
			Sessions: max(0, sessions),
		})
	}

	return points
}
