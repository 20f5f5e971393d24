// Package assistant wraps the external language-model collaborator. The
// backend treats it as an opaque call: prior turns plus one question in,
// generated text out. Retries, if any, belong to the caller.
package assistant

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/oksasatya/go-chat-memory/internal/domain/entity"
)

var ErrEmptyCompletion = errors.New("assistant returned no choices")

// Assistant generates a reply given the surviving conversation history and
// the new question.
type Assistant interface {
	Generate(ctx context.Context, history []entity.Turn, question string) (string, error)
}

// Options configures the OpenAI-compatible chat completion call.
type Options struct {
	APIKey      string
	BaseURL     string // optional, for OpenAI-compatible providers
	Model       string
	SystemMsg   string
	Temperature float64
	TopP        float64
	MaxTokens   int64
}

// OpenAI is an Assistant backed by the chat completions API.
type OpenAI struct {
	client *openai.Client
	opts   Options
}

func NewOpenAI(opts Options) *OpenAI {
	var client *openai.Client
	if opts.BaseURL != "" {
		client = openai.NewClient(option.WithBaseURL(opts.BaseURL), option.WithAPIKey(opts.APIKey))
	} else {
		client = openai.NewClient(option.WithAPIKey(opts.APIKey))
	}
	return &OpenAI{client: client, opts: opts}
}

func (a *OpenAI) Generate(ctx context.Context, history []entity.Turn, question string) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	if a.opts.SystemMsg != "" {
		messages = append(messages, openai.SystemMessage(a.opts.SystemMsg))
	}
	for _, t := range history {
		switch t.Role {
		case entity.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(t.Content))
		default:
			messages = append(messages, openai.UserMessage(t.Content))
		}
	}
	messages = append(messages, openai.UserMessage(question))

	completion, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.F(a.opts.Model),
		Messages:    openai.F(messages),
		Temperature: openai.F(a.opts.Temperature),
		TopP:        openai.F(a.opts.TopP),
		MaxTokens:   openai.F(a.opts.MaxTokens),
	})
	if err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return completion.Choices[0].Message.Content, nil
}

var _ Assistant = (*OpenAI)(nil)
