package assistant

import (
	"context"
	"fmt"
	"time"

	"edutech/internal/domain"
	"edutech/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

const systemPrompt = `You are an expert educational AI assistant for EduTech AI, a personalized learning platform.
You're here to help users with their learning journey by answering questions about their courses,
explaining challenging concepts, and providing additional learning resources.

Be friendly, encouraging, and concise. Focus on providing accurate, educational answers.
If you don't know something, be honest and suggest resources where they might find more information.

Keep your answers educational, helpful, and appropriate for learners of all ages.`

const emptyResponseFallback = "I'm sorry, I couldn't generate a response. Please try again."

// openAIAssistant implements domain.Assistant on an OpenAI chat model.
type openAIAssistant struct {
	model   llms.Model
	timeout time.Duration
}

// NewOpenAIAssistant creates an assistant backed by the given OpenAI model
// name. apiKey must be set; the adapter fails fast rather than deferring the
// error to the first query.
func NewOpenAIAssistant(apiKey, modelName string, timeout time.Duration) (domain.Assistant, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai api key is required")
	}

	llm, err := openai.New(openai.WithToken(apiKey), openai.WithModel(modelName))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize openai client: %w", err)
	}

	return &openAIAssistant{model: llm, timeout: timeout}, nil
}

// NewAssistantWithModel wires an assistant onto an already-built model.
// Tests use this to substitute a fake.
func NewAssistantWithModel(model llms.Model, timeout time.Duration) domain.Assistant {
	return &openAIAssistant{model: model, timeout: timeout}
}

// Answer forwards a single query to the model. Each call is independent:
// no retries, no streaming, no caching of previous answers.
func (a *openAIAssistant) Answer(ctx context.Context, query string) (string, error) {
	l := logger.Get()

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, query),
	}

	resp, err := a.model.GenerateContent(ctx, messages,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(500),
	)
	if err != nil {
		l.Error("assistant model call failed", zap.Error(err))
		return "", domain.NewAssistantUnavailableError(err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return emptyResponseFallback, nil
	}
	return resp.Choices[0].Content, nil
}

// disabledAssistant answers every query with an unavailability error. It
// stands in when no API key is configured, so the route keeps its shape.
type disabledAssistant struct{}

// NewDisabledAssistant creates an assistant that always reports itself
// unavailable.
func NewDisabledAssistant() domain.Assistant {
	return disabledAssistant{}
}

func (disabledAssistant) Answer(ctx context.Context, query string) (string, error) {
	return "", domain.NewAssistantUnavailableError(fmt.Errorf("assistant is not configured"))
}
