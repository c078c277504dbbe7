package fiber

import (
	"context"
	"net/http"

	"insights-api/internal/status/core/domain"

	"github.com/gofiber/fiber/v2"
)

type CheckStatusUseCase interface {
	Execute(ctx context.Context) domain.StatusReport
}

type StatusHandler struct {
	uc CheckStatusUseCase
}

func NewStatusHandler(uc CheckStatusUseCase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

// Root godoc
// @Summary Service greeting
// @Tags Status
// @Produce json
// @Success 200 {object} MessageResponse
// @Router / [get]
func (h *StatusHandler) Root(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(MessageResponse{
		Message: "Hello from Insights API Backend!",
	})
}

// Hello godoc
// @Summary API greeting
// @Tags Status
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /api/hello [get]
func (h *StatusHandler) Hello(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(MessageResponse{
		Message: "Hello from the backend API!",
	})
}

// Test godoc
// @Summary Backend and database connectivity report
// @Description Probes the optional data store and reports availability as display strings
// @Tags Status
// @Produce json
// @Success 200 {object} StatusReportResponse
// @Router /test [get]
func (h *StatusHandler) Test(c *fiber.Ctx) error {
	report := h.uc.Execute(c.Context())

	return c.Status(http.StatusOK).JSON(StatusReportResponse{
		Backend:          report.Backend,
		Database:         report.Database,
		DatabaseURL:      report.DatabaseURL,
		DatabaseName:     report.DatabaseName,
		ConnectionStatus: report.ConnectionStatus,
		Collections:      report.Collections,
	})
}
