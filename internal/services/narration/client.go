package narration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/npc-arena/internal/platform/errors"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// ErrNotConfigured reports that no API key was provided.
var ErrNotConfigured = apperrors.New(apperrors.CodeNarrationUnavailable, "narration is not configured: set NPC_ARENA_GROQ_API_KEY")

// Narrator produces prose about battles.
type Narrator interface {
	Narrate(ctx context.Context, req Request) (string, error)
	Ask(ctx context.Context, question string) (string, error)
}

// Client is a Narrator backed by a chat completion API.
type Client struct {
	cfg    Config
	client *openai.Client
}

var _ Narrator = (*Client)(nil)

// New creates a client. Without an API key every call returns
// ErrNotConfigured.
func New(cfg Config) *Client {
	cfg = cfg.withDefaults()
	c := &Client{cfg: cfg}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return c
	}
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithHTTPClient(cfg.HTTPClient),
		option.WithMaxRetries(cfg.MaxRetries),
	)
	c.client = &client
	return c
}

// Configured reports whether calls can reach the provider.
func (c *Client) Configured() bool {
	return c != nil && c.client != nil
}

// Narrate narrates a battle log.
func (c *Client) Narrate(ctx context.Context, req Request) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	prompt, err := BuildPrompt(req)
	if err != nil {
		return "", err
	}
	return c.complete(ctx, prompt)
}

// Ask answers a free-form question about battles.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}
	question = strings.TrimSpace(question)
	if question == "" {
		return "", apperrors.WithMetadata(apperrors.CodeInvalidArgument, "question is required", map[string]string{"Field": "question"})
	}
	return c.complete(ctx, question)
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(callCtx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.cfg.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(maxTokens),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", apperrors.Wrap(apperrors.CodeNarrationFailed, fmt.Sprintf("narration provider status %d", apiErr.StatusCode), err)
		}
		return "", apperrors.Wrap(apperrors.CodeNarrationFailed, "narration request failed", err)
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.New(apperrors.CodeNarrationFailed, "narration provider returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
