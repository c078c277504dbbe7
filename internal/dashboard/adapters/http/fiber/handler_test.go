package fiber_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	dashboardHttp "insights-api/internal/dashboard/adapters/http/fiber"
	"insights-api/internal/dashboard/core/domain"
	"insights-api/internal/dashboard/core/usecase"

	"github.com/gofiber/fiber/v2"
)

// Fake usecase implementing the interface that handler depends on.

type fakeBuildDashboardUseCase struct {
	ExecuteFn func(ctx context.Context, in usecase.BuildDashboardInput) (*domain.DashboardPayload, error)

	called    bool
	lastInput usecase.BuildDashboardInput
}

func (f *fakeBuildDashboardUseCase) Execute(ctx context.Context, in usecase.BuildDashboardInput) (*domain.DashboardPayload, error) {
	f.called = true
	f.lastInput = in
	if f.ExecuteFn != nil {
		return f.ExecuteFn(ctx, in)
	}
	return &domain.DashboardPayload{Range: in.Range}, nil
}

func samplePayload(rangeLabel string) *domain.DashboardPayload {
	return &domain.DashboardPayload{
		Range: rangeLabel,
		KPIs: []domain.KPI{
			{Label: "Total Users", Value: 23540, Delta: 4.2, Icon: "Users", Format: domain.FormatNumber},
		},
		Series: []domain.TimeSeriesPoint{
			{Date: "2025-06-14", Users: 807, Sessions: 1210},
		},
		Features: []domain.FeatureUsage{
			{Name: "Feature C", Count: 1180},
		},
		Traffic: []domain.TrafficSource{
			{Name: domain.TrafficOrganic, Value: 5200},
		},
		Recent: []domain.ActivityRecord{
			{Name: "User 1", Email: "user1@example.com", Date: "2025-06-14", Source: domain.TrafficOrganic, Status: domain.StatusActivated},
		},
		LastUpdated: "2025-06-15T12:00:00.000000Z",
	}
}

func setupApp(uc dashboardHttp.BuildDashboardUseCase) *fiber.App {
	app := fiber.New()
	handler := dashboardHttp.NewDashboardHandler(uc)
	app.Get("/api/dashboard/sample", handler.GetSampleDashboard)
	return app
}

// ------------------------------------------------------------
// SUCCESS: default range
// ------------------------------------------------------------

func TestGetSampleDashboard_AppliesDefaultRange(t *testing.T) {
	fakeUC := &fakeBuildDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.BuildDashboardInput) (*domain.DashboardPayload, error) {
			return samplePayload(in.Range), nil
		},
	}
	app := setupApp(fakeUC)

	req := httptest.NewRequest("GET", "/api/dashboard/sample", nil)
	resp, err := app.Test(req)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if !fakeUC.called {
		t.Fatal("expected usecase to be called")
	}
	if fakeUC.lastInput.Range != "Last 30 days" {
		t.Fatalf("expected default range, got %q", fakeUC.lastInput.Range)
	}

	var body dashboardHttp.DashboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if body.Range != "Last 30 days" {
		t.Fatalf("expected range echoed in body, got %q", body.Range)
	}
	if body.LastUpdated != "2025-06-15T12:00:00.000000Z" {
		t.Fatalf("unexpected last_updated %q", body.LastUpdated)
	}
}

// ------------------------------------------------------------
// SUCCESS: explicit range echoed
// ------------------------------------------------------------

func TestGetSampleDashboard_EchoesRequestedRange(t *testing.T) {
	fakeUC := &fakeBuildDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.BuildDashboardInput) (*domain.DashboardPayload, error) {
			return samplePayload(in.Range), nil
		},
	}
	app := setupApp(fakeUC)

	req := httptest.NewRequest("GET", "/api/dashboard/sample?range=Last+7+days", nil)
	resp, err := app.Test(req)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}
	if fakeUC.lastInput.Range != "Last 7 days" {
		t.Fatalf("expected requested range forwarded, got %q", fakeUC.lastInput.Range)
	}

	var body dashboardHttp.DashboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if body.Range != "Last 7 days" {
		t.Fatalf("expected range echoed in body, got %q", body.Range)
	}
}

// ------------------------------------------------------------
// SUCCESS: wire field names
// ------------------------------------------------------------

func TestGetSampleDashboard_UsesSnakeCaseWireFields(t *testing.T) {
	fakeUC := &fakeBuildDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.BuildDashboardInput) (*domain.DashboardPayload, error) {
			return samplePayload(in.Range), nil
		},
	}
	app := setupApp(fakeUC)

	req := httptest.NewRequest("GET", "/api/dashboard/sample", nil)
	resp, err := app.Test(req)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	for _, key := range []string{"range", "kpis", "series", "features", "traffic", "recent", "last_updated"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("expected top-level key %q in response", key)
		}
	}
}

// ------------------------------------------------------------
// FAIL: usecase error
// ------------------------------------------------------------

func TestGetSampleDashboard_InternalError(t *testing.T) {
	fakeUC := &fakeBuildDashboardUseCase{
		ExecuteFn: func(ctx context.Context, in usecase.BuildDashboardInput) (*domain.DashboardPayload, error) {
			return nil, errors.New("generator blew up")
		},
	}
	app := setupApp(fakeUC)

	req := httptest.NewRequest("GET", "/api/dashboard/sample", nil)
	resp, err := app.Test(req)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 500 {
		t.Fatalf("expected status 500, got %d", resp.StatusCode)
	}

	var body dashboardHttp.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if body.Error != "internal_server_error" {
		t.Fatalf("expected internal_server_error, got %q", body.Error)
	}
}
