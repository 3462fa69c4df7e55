package assistant

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"edutech/internal/config"
	"edutech/internal/domain"
	"edutech/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/tmc/langchaingo/llms"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "debug", Env: "test"}); err != nil {
		panic("failed to initialize logger for tests: " + err.Error())
	}
	os.Exit(m.Run())
}

// fakeModel returns canned responses without touching the network.
type fakeModel struct {
	resp *llms.ContentResponse
	err  error

	gotMessages []llms.MessageContent
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.gotMessages = messages
	return f.resp, f.err
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", errors.New("not implemented")
}

func TestOpenAIAssistant_Answer_Success(t *testing.T) {
	model := &fakeModel{
		resp: &llms.ContentResponse{
			Choices: []*llms.ContentChoice{{Content: "A closure captures variables from its scope."}},
		},
	}
	a := NewAssistantWithModel(model, time.Second)

	answer, err := a.Answer(context.Background(), "What is a closure?")

	assert.NoError(t, err)
	assert.Equal(t, "A closure captures variables from its scope.", answer)

	// System prompt precedes the user query.
	assert.Len(t, model.gotMessages, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, model.gotMessages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.gotMessages[1].Role)
}

func TestOpenAIAssistant_Answer_UpstreamError(t *testing.T) {
	model := &fakeModel{err: errors.New("rate limited")}
	a := NewAssistantWithModel(model, time.Second)

	answer, err := a.Answer(context.Background(), "What is a closure?")

	assert.Empty(t, answer)
	var domainErr *domain.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeAssistantUnavailable, domainErr.Code)
}

func TestOpenAIAssistant_Answer_EmptyCompletion(t *testing.T) {
	model := &fakeModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{}}}
	a := NewAssistantWithModel(model, time.Second)

	answer, err := a.Answer(context.Background(), "What is a closure?")

	assert.NoError(t, err)
	assert.Equal(t, emptyResponseFallback, answer)
}

func TestNewOpenAIAssistant_RequiresAPIKey(t *testing.T) {
	a, err := NewOpenAIAssistant("", "gpt-4o", time.Second)
	assert.Nil(t, a)
	assert.Error(t, err)
}

func TestDisabledAssistant_AlwaysUnavailable(t *testing.T) {
	a := NewDisabledAssistant()

	answer, err := a.Answer(context.Background(), "What is a closure?")

	assert.Empty(t, answer)
	var domainErr *domain.DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeAssistantUnavailable, domainErr.Code)
}
