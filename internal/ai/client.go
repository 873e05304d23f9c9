// Package ai wraps the hosted completion API used by the chat assistant and
// implements the keyword triage applied to its replies.
package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// FallbackReply is returned to the user when the completion API yields an
// empty or malformed response.
const FallbackReply = "I apologize, but I am unable to provide a response at this time."

// Completer generates a single assistant reply from a system prompt and a
// user prompt. A single call, no retry, no streaming.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Compile-time check that Client satisfies Completer.
var _ Completer = (*Client)(nil)

// Client calls the OpenAI chat completion API.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a completion client. An empty model selects gpt-4.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = openai.GPT4
	}
	return &Client{api: openai.NewClient(apiKey), model: model}
}

// Complete issues one chat completion request. An empty reply (no choices)
// is returned as an empty string, not an error; callers substitute
// FallbackReply.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
