package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"insights-api/internal/chat/core/domain"
	"insights-api/internal/chat/core/usecase"

	"github.com/gofiber/fiber/v2"
)

type RespondUseCase interface {
	Execute(ctx context.Context, in usecase.RespondInput) (*domain.ChatReply, error)
}

// ChatHandler serves the stub chat endpoint. thinkingDelay simulates model
// latency before a successful reply is written.
type ChatHandler struct {
	uc            RespondUseCase
	thinkingDelay time.Duration
}

func NewChatHandler(uc RespondUseCase, thinkingDelay time.Duration) *ChatHandler {
	return &ChatHandler{
		uc:            uc,
		thinkingDelay: thinkingDelay,
	}
}

// Respond godoc
// @Summary Stub chat reply
// @Description Returns a canned assistant reply after a short artificial delay
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Chat message"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/chat/respond [post]
func (h *ChatHandler) Respond(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_json",
		})
	}

	res, err := h.uc.Execute(c.UserContext(), usecase.RespondInput{Message: req.Message})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyMessage):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error:   "invalid_message",
				Message: err.Error(),
			})
		default:
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}
	}

	if h.thinkingDelay > 0 {
		time.Sleep(h.thinkingDelay)
	}

	return c.Status(http.StatusOK).JSON(ChatResponse{
		Reply:  res.Reply,
		Source: res.Source,
	})
}
