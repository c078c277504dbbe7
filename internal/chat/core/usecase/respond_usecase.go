package usecase

import (
	"context"
	"errors"

	"insights-api/internal/chat/core/domain"
)

var ErrEmptyMessage = errors.New("message is required")

const (
	cannedReply = "Here is a sample answer. In a real app this would be generated by an AI model and could stream tokens to the client."
	replySource = "AI • Model v1"
)

type RespondInput struct {
	Message string
}

// RespondUseCase answers every chat message with the same canned reply. The
// message content is validated for presence and otherwise ignored.
type RespondUseCase struct{}

func NewRespondUseCase() *RespondUseCase {
	return &RespondUseCase{}
}

func (uc *RespondUseCase) Execute(ctx context.Context, in RespondInput) (*domain.ChatReply, error) {
	if in.Message == "" {
		return nil, ErrEmptyMessage
	}

	return &domain.ChatReply{
		Reply:  cannedReply,
		Source: replySource,
	}, nil
}
