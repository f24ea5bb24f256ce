package ai

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrUnknownProvider is returned by New for an unsupported provider name.
	ErrUnknownProvider = errors.New("unknown ai provider")
	// ErrEmptyPrompt is returned when Complete is called without a prompt.
	ErrEmptyPrompt = errors.New("empty prompt")
)

// TextModel sends a prompt to a text-completion model and returns its reply.
// An empty reply with a nil error means the model answered with no text.
type TextModel interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Provider is a TextModel backed by a vendor SDK client.
type Provider interface {
	TextModel
	Name() string
	Close() error
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
