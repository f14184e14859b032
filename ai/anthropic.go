package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rs/zerolog/log"

	"promptlab/logger"
)

const anthropicMaxTokens = 2048

type AnthropicServiceProvider struct {
	options Options
	client  *anthropic.Client
}

func (self *AnthropicServiceProvider) Prepare() error {
	if self.options.APIKey == "" {
		log.Warn().Str("component", logger.CHAT).Msg("ANTHROPIC_API_KEY is empty, requests will be rejected by the service")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(self.options.APIKey),
		option.WithMaxRetries(0),
	}
	if self.options.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(self.options.BaseURL))
	}

	self.client = anthropic.NewClient(opts...)
	return nil
}

func (self *AnthropicServiceProvider) Complete(ctx context.Context, request CompletionRequest) (string, error) {
	if self.client == nil {
		return "", errors.New("client not initialized, call Prepare() first")
	}

	var messages []anthropic.MessageParam
	for _, m := range request.Messages {
		if m.Role == RoleUser {
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	msg := anthropic.MessageNewParams{
		Model:       anthropic.F(anthropic.Model(request.Model)),
		MaxTokens:   anthropic.Int(anthropicMaxTokens),
		Temperature: anthropic.F(request.Temperature),
		System: anthropic.F([]anthropic.TextBlockParam{
			anthropic.NewTextBlock(request.SystemPrompt()),
		}),
		Messages: anthropic.F(messages),
	}

	log.Debug().
		Str("component", logger.CHAT).
		Str("model", request.Model).
		Float64("temperature", request.Temperature).
		Msg("Sending messages request")

	resp, err := self.client.Messages.New(ctx, msg)
	if err != nil {
		return "", wrapAnthropicError(err)
	}

	if len(resp.Content) == 0 {
		log.Warn().Str("component", logger.CHAT).Msg("Messages response has no content blocks")
		return "", nil
	}

	return resp.Content[0].Text, nil
}

func (self *AnthropicServiceProvider) String() string {
	return fmt.Sprintf("anthropic-%s", self.displayURL())
}

func (self *AnthropicServiceProvider) displayURL() string {
	if self.options.BaseURL != "" {
		return self.options.BaseURL
	}
	return "default"
}
