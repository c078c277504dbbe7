package usecase_test

import (
	"testing"

	"insights-api/internal/dashboard/core/domain"
	"insights-api/internal/dashboard/core/usecase"
)

// ------------------------------------------------------------
// SUCCESS: positional cycling
// ------------------------------------------------------------

func TestActivitySynthesizer_CyclesSourcesAndStatuses(t *testing.T) {
	synthesizer := usecase.NewActivitySynthesizer(fakeClock{now: fixedInstant})

	records := synthesizer.Generate(5)

	if len(records) != 5 {
		t.Fatalf("expected 5 records, got %d", len(records))
	}

	wantSources := []domain.TrafficCategory{
		domain.TrafficOrganic,
		domain.TrafficPaid,
		domain.TrafficReferral,
		domain.TrafficSocial,
		domain.TrafficOrganic,
	}
	wantStatuses := []domain.ActivityStatus{
		domain.StatusActivated,
		domain.StatusInvited,
		domain.StatusPending,
		domain.StatusChurnRisk,
		domain.StatusActivated,
	}

	for i, r := range records {
		if r.Source != wantSources[i] {
			t.Fatalf("record %d: expected source %q, got %q", i, wantSources[i], r.Source)
		}
		if r.Status != wantStatuses[i] {
			t.Fatalf("record %d: expected status %q, got %q", i, wantStatuses[i], r.Status)
		}
	}
}

// ------------------------------------------------------------
// SUCCESS: identities and dates
// ------------------------------------------------------------

func TestActivitySynthesizer_IndexDrivesIdentityAndDate(t *testing.T) {
	synthesizer := usecase.NewActivitySynthesizer(fakeClock{now: fixedInstant})

	records := synthesizer.Generate(3)

	wantNames := []string{"User 1", "User 2", "User 3"}
	wantEmails := []string{"user1@example.com", "user2@example.com", "user3@example.com"}
	wantDates := []string{"2025-06-14", "2025-06-13", "2025-06-12"}

	for i, r := range records {
		if r.Name != wantNames[i] {
			t.Fatalf("record %d: expected name %q, got %q", i, wantNames[i], r.Name)
		}
		if r.Email != wantEmails[i] {
			t.Fatalf("record %d: expected email %q, got %q", i, wantEmails[i], r.Email)
		}
		if r.Date != wantDates[i] {
			t.Fatalf("record %d: expected date %q, got %q", i, wantDates[i], r.Date)
		}
	}
}

// ------------------------------------------------------------
// EDGE CASE: non-positive count
// ------------------------------------------------------------

func TestActivitySynthesizer_EmptyForNonPositiveCount(t *testing.T) {
	synthesizer := usecase.NewActivitySynthesizer(fakeClock{now: fixedInstant})

	for _, count := range []int{0, -2} {
		records := synthesizer.Generate(count)
		if records == nil {
			t.Fatalf("count=%d: expected empty slice, got nil", count)
		}
		if len(records) != 0 {
			t.Fatalf("count=%d: expected no records, got %d", count, len(records))
		}
	}
}
