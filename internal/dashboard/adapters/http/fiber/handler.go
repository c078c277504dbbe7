package fiber

import (
	"context"
	"net/http"

	"insights-api/internal/dashboard/core/domain"
	"insights-api/internal/dashboard/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type BuildDashboardUseCase interface {
	Execute(ctx context.Context, in usecase.BuildDashboardInput) (*domain.DashboardPayload, error)
}

type DashboardHandler struct {
	uc BuildDashboardUseCase
}

func NewDashboardHandler(uc BuildDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSampleDashboard godoc
// @Summary Sample dashboard dataset
// @Description Returns a synthetic, self-consistent dashboard payload generated fresh per request
// @Tags Dashboard
// @Produce json
// @Param range query string false "Reporting window label, echoed back verbatim" default(Last 30 days)
// @Success 200 {object} DashboardResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/dashboard/sample [get]
func (h *DashboardHandler) GetSampleDashboard(c *fiber.Ctx) error {
	rangeLabel := c.Query("range", domain.DefaultRangeLabel)

	res, err := h.uc.Execute(c.Context(), usecase.BuildDashboardInput{Range: rangeLabel})
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_server_error",
		})
	}

	return c.Status(http.StatusOK).JSON(toDashboardResponse(res))
}

func toDashboardResponse(p *domain.DashboardPayload) DashboardResponse {
	resp := DashboardResponse{
		Range:       p.Range,
		KPIs:        make([]KPIResponse, 0, len(p.KPIs)),
		Series:      make([]TimeSeriesPointResponse, 0, len(p.Series)),
		Features:    make([]FeatureUsageResponse, 0, len(p.Features)),
		Traffic:     make([]TrafficSourceResponse, 0, len(p.Traffic)),
		Recent:      make([]ActivityRecordResponse, 0, len(p.Recent)),
		LastUpdated: p.LastUpdated,
	}

	for _, k := range p.KPIs {
		resp.KPIs = append(resp.KPIs, KPIResponse{
			Label:  k.Label,
			Value:  k.Value,
			Delta:  k.Delta,
			Icon:   k.Icon,
			Format: string(k.Format),
		})
	}

	for _, pt := range p.Series {
		resp.Series = append(resp.Series, TimeSeriesPointResponse{
			Date:     pt.Date,
			Users:    pt.Users,
			Sessions: pt.Sessions,
		})
	}

	for _, f := range p.Features {
		resp.Features = append(resp.Features, FeatureUsageResponse{
			Name:  f.Name,
			Count: f.Count,
		})
	}

	for _, s := range p.Traffic {
		resp.Traffic = append(resp.Traffic, TrafficSourceResponse{
			Name:  string(s.Name),
			Value: s.Value,
		})
	}

	for _, r := range p.Recent {
		resp.Recent = append(resp.Recent, ActivityRecordResponse{
			Name:   r.Name,
			Email:  r.Email,
			Date:   r.Date,
			Source: string(r.Source),
			Status: string(r.Status),
		})
	}

	return resp
}
