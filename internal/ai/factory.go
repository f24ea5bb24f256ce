package ai

import (
	"context"
	"fmt"

	"greenroute/internal/config"
)

// New builds the provider selected by cfg.Provider.
func New(ctx context.Context, cfg config.AIConfig) (Provider, error) {
	var (
		p   Provider
		err error
	)
	switch cfg.Provider {
	case config.ProviderGemini:
		p, err = asProvider(NewGeminiProvider(ctx, cfg.GeminiKey, cfg.Model, cfg.Timeout))
	case config.ProviderOpenAI:
		p, err = asProvider(NewOpenAIProvider(cfg.OpenAIKey, cfg.Model, "", cfg.Timeout))
	case config.ProviderClaude:
		p, err = asProvider(NewClaudeProvider(cfg.AnthropicKey, cfg.Model, "", cfg.Timeout))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// asProvider drops the concrete pointer on error so callers never see a typed nil.
func asProvider[P Provider](p P, err error) (Provider, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}
