package ai

import (
	"context"
	"errors"
	"fmt"
)

type AiServiceProvider interface {
	Prepare() error
	Complete(ctx context.Context, request CompletionRequest) (string, error)
	String() string
}

var (
	ErrFailedPreparation = errors.New("provider has failed to prepare")
)

type AiServiceType string

const (
	OpenAiServiceType    AiServiceType = "openai"
	AnthropicServiceType AiServiceType = "anthropic"
)

// ServiceTypes lists the backends in display order.
var ServiceTypes = []AiServiceType{OpenAiServiceType, AnthropicServiceType}

// Options carries what a backend needs to reach its endpoint.
type Options struct {
	APIKey  string
	BaseURL string
}

func NewAiServiceProvider(serviceType AiServiceType, options Options) (AiServiceProvider, error) {
	switch serviceType {
	case OpenAiServiceType:
		return &OpenAiServiceProvider{options: options}, nil
	case AnthropicServiceType:
		return &AnthropicServiceProvider{options: options}, nil
	}

	return nil, fmt.Errorf("%w: unknown service %q", ErrFailedPreparation, serviceType)
}

// KeyVariable is the environment variable holding the credential of a backend.
func KeyVariable(serviceType AiServiceType) string {
	switch serviceType {
	case AnthropicServiceType:
		return "ANTHROPIC_API_KEY"
	default:
		return "OPENAI_API_KEY"
	}
}

// DisplayName is the vendor name used in operator-facing messages.
func DisplayName(serviceType AiServiceType) string {
	switch serviceType {
	case AnthropicServiceType:
		return "Anthropic"
	default:
		return "OpenAI"
	}
}

// DefaultModel is the model used when none is configured.
func DefaultModel(serviceType AiServiceType) string {
	switch serviceType {
	case AnthropicServiceType:
		return "claude-3-5-haiku-latest"
	default:
		return "gpt-3.5-turbo"
	}
}
