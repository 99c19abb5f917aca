package llm

import (
	"context"
)

// NoContent is returned when the upstream answered but the response carried
// no usable text. Callers treat it as degraded output, not as a failure.
const NoContent = "No content generated."

// Provider is the interface for generative-text backends. GenerateText makes
// exactly one upstream call and returns the first candidate's text.
type Provider interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	GetProviderName() string
}

// ProviderError represents an error from a generative-text provider.
type ProviderError struct {
	Provider string
	Code     string
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return e.Provider + " error: " + e.Message + " (" + e.Err.Error() + ")"
	}
	return e.Provider + " error: " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Common error codes shared across providers.
const (
	ErrCodeAPIKey      = "invalid_api_key"
	ErrCodeRateLimit   = "rate_limit_exceeded"
	ErrCodeServiceDown = "service_unavailable"
	ErrCodeBadStatus   = "unexpected_status"
	ErrCodeTimeout     = "timeout"
)
