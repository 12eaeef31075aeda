package rewrite

import (
	"context"
)

// Provider rewrites a blended answer for a visitor question. Implementations
// must never fail the request: on any error, timeout, or bad upstream
// response they return the original content unchanged.
type Provider interface {
	Rewrite(ctx context.Context, question, content string) string
}

// NoopProvider passes content through untouched. Used when no rewrite
// endpoint is configured.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Rewrite(_ context.Context, _, content string) string {
	return content
}
