package service

import (
	"context"

	"edutech/internal/domain"
	"edutech/internal/dto"
	"edutech/internal/logger"

	"go.uber.org/zap"
)

// AssistantService defines the interface for the AI course assistant.
type AssistantService interface {
	Ask(ctx context.Context, userID int64, req *dto.AssistantRequest) (*dto.AssistantResponse, error)
}

type assistantServiceImpl struct {
	assistant domain.Assistant
}

// NewAssistantService creates a new instance of AssistantService.
func NewAssistantService(assistant domain.Assistant) AssistantService {
	return &assistantServiceImpl{assistant: assistant}
}

// Ask forwards the query to the assistant. Queries and answers are not
// persisted or cached; each call is an independent upstream request.
func (s *assistantServiceImpl) Ask(ctx context.Context, userID int64, req *dto.AssistantRequest) (*dto.AssistantResponse, error) {
	answer, err := s.assistant.Answer(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	logger.Get().Debug("Assistant query answered", zap.Int64("userID", userID))
	return &dto.AssistantResponse{Response: answer}, nil
}
