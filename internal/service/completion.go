package service

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Completer produces answer texts for an augmented prompt, one per completion
// choice.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) ([]string, error)
}

// OpenAICompleter calls the OpenAI chat completions API.
type OpenAICompleter struct {
	client *openai.Client
	model  string
}

// NewOpenAICompleter builds a completer from an API key.
func NewOpenAICompleter(apiKey, model string) *OpenAICompleter {
	return NewOpenAICompleterWithConfig(openai.DefaultConfig(apiKey), model)
}

// NewOpenAICompleterWithConfig allows overriding the client configuration
// (useful for tests pointing at a mock server).
func NewOpenAICompleterWithConfig(cfg openai.ClientConfig, model string) *OpenAICompleter {
	return &OpenAICompleter{client: openai.NewClientWithConfig(cfg), model: model}
}

// Complete sends the system and user messages and returns one answer per choice.
func (c *OpenAICompleter) Complete(ctx context.Context, systemPrompt, userPrompt string) ([]string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("completion request failed: %w", err)
	}

	answers := make([]string, 0, len(resp.Choices))
	for _, choice := range resp.Choices {
		answers = append(answers, choice.Message.Content)
	}
	return answers, nil
}

var _ Completer = (*OpenAICompleter)(nil)
