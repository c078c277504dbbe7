package usecase_test

import (
	"testing"
	"time"

	"insights-api/internal/dashboard/core/domain"
	"insights-api/internal/dashboard/core/usecase"
)

// ------------------------------------------------------------
// SUCCESS: trend without noise
// ------------------------------------------------------------

func TestSeriesGenerator_TrendWithZeroNoise(t *testing.T) {
	random := &fakeRandom{
		IntBetweenFn: func(min, max int) int { return 0 },
	}
	generator := usecase.NewSeriesGenerator(fakeClock{now: fixedInstant}, random)

	points := generator.Generate(3)

	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}

	wantDates := []string{"2025-06-12", "2025-06-13", "2025-06-14"}
	wantUsers := []int{800, 807, 814}
	wantSessions := []int{1200, 1210, 1220}

	for i, p := range points {
		if p.Date != wantDates[i] {
			t.Fatalf("point %d: expected date %q, got %q", i, wantDates[i], p.Date)
		}
		if p.Users != wantUsers[i] {
			t.Fatalf("point %d: expected %d users, got %d", i, wantUsers[i], p.Users)
		}
		if p.Sessions != wantSessions[i] {
			t.Fatalf("point %d: expected %d sessions, got %d", i, wantSessions[i], p.Sessions)
		}
	}
}

// ------------------------------------------------------------
// SUCCESS: date window
// ------------------------------------------------------------

func TestSeriesGenerator_DatesEndYesterdayAndIncreaseDaily(t *testing.T) {
	random := &fakeRandom{}
	generator := usecase.NewSeriesGenerator(fakeClock{now: fixedInstant}, random)

	points := generator.Generate(30)

	if len(points) != 30 {
		t.Fatalf("expected 30 points, got %d", len(points))
	}

	last := points[len(points)-1].Date
	if last != "2025-06-14" {
		t.Fatalf("expected last date 2025-06-14, got %q", last)
	}

	for i := 1; i < len(points); i++ {
		prev, err := time.Parse(domain.DateFormat, points[i-1].Date)
		if err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		curr, err := time.Parse(domain.DateFormat, points[i].Date)
		if err != nil {
			t.Fatalf("unexpected parse error: %v", err)
		}
		if curr.Sub(prev) != 24*time.Hour {
			t.Fatalf("dates %q -> %q are not one day apart", points[i-1].Date, points[i].Date)
		}
	}
}

// ------------------------------------------------------------
// SUCCESS: noise bounds
// ------------------------------------------------------------

func TestSeriesGenerator_RequestsDocumentedNoiseBounds(t *testing.T) {
	random := &fakeRandom{}
	generator := usecase.NewSeriesGenerator(fakeClock{now: fixedInstant}, random)

	generator.Generate(2)

	if len(random.intBetweenCalls) != 4 {
		t.Fatalf("expected 4 random draws, got %d", len(random.intBetweenCalls))
	}

	// Draw order per point: users first, sessions second.
	want := []intBetweenCall{
		{min: -60, max: 60},
		{min: -90, max: 90},
		{min: -60, max: 60},
		{min: -90, max: 90},
	}
	for i, call := range random.intBetweenCalls {
		if call != want[i] {
			t.Fatalf("draw %d: expected bounds %+v, got %+v", i, want[i], call)
		}
	}
}

// ------------------------------------------------------------
// EDGE CASE: clamp at zero
// ------------------------------------------------------------

func TestSeriesGenerator_ClampsNegativeValuesAtZero(t *testing.T) {
	random := &fakeRandom{
		IntBetweenFn: func(min, max int) int { return -5000 },
	}
	generator := usecase.NewSeriesGenerator(fakeClock{now: fixedInstant}, random)

	points := generator.Generate(3)

	for i, p := range points {
		if p.Users != 0 {
			t.Fatalf("point %d: expected users clamped to 0, got %d", i, p.Users)
		}
		if p.Sessions != 0 {
			t.Fatalf("point %d: expected sessions clamped to 0, got %d", i, p.Sessions)
		}
	}
}

// ------------------------------------------------------------
// EDGE CASE: non-positive day count
// ------------------------------------------------------------

func TestSeriesGenerator_EmptyForNonPositiveDays(t *testing.T) {
	generator := usecase.NewSeriesGenerator(fakeClock{now: fixedInstant}, &fakeRandom{})

	for _, days := range []int{0, -5} {
		points := generator.Generate(days)
		if points == nil {
			t.Fatalf("days=%d: expected empty slice, got nil", days)
		}
		if len(points) != 0 {
			t.Fatalf("days=%d: expected no points, got %d", days, len(points))
		}
	}
}
