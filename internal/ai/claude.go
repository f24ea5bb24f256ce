package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	defaultClaudeModel = "claude-3-5-haiku-latest"
	claudeMaxTokens    = 256
)

// ClaudeProvider implements Provider on the Anthropic messages API.
type ClaudeProvider struct {
	client  anthropic.Client
	model   string
	timeout time.Duration
}

// NewClaudeProvider creates a ClaudeProvider. baseURL is only set in tests.
func NewClaudeProvider(apiKey, model, baseURL string, timeout time.Duration) (*ClaudeProvider, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("claude: missing api key")
	}
	if model == "" {
		model = defaultClaudeModel
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &ClaudeProvider{
		client:  anthropic.NewClient(opts...),
		model:   model,
		timeout: timeout,
	}, nil
}

func (p *ClaudeProvider) Name() string {
	return "claude-" + p.model
}

func (p *ClaudeProvider) Close() error { return nil }

// Complete concatenates the text blocks of the reply.
func (p *ClaudeProvider) Complete(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	ctx, cancel := withTimeout(ctx, p.timeout)
	defer cancel()

	msg, err := p.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: claudeMaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude: create message: %w", err)
	}

	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String(), nil
}
