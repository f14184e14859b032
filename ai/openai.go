package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"promptlab/logger"
)

type OpenAiServiceProvider struct {
	options Options
	client  *openai.Client
}

func (self *OpenAiServiceProvider) Prepare() error {
	if self.options.APIKey == "" {
		log.Warn().Str("component", logger.CHAT).Msg("OPENAI_API_KEY is empty, requests will be rejected by the service")
	}

	config := openai.DefaultConfig(self.options.APIKey)
	if self.options.BaseURL != "" {
		config.BaseURL = self.options.BaseURL
	}
	self.client = openai.NewClientWithConfig(config)
	return nil
}

func (self *OpenAiServiceProvider) Complete(ctx context.Context, request CompletionRequest) (string, error) {
	if self.client == nil {
		return "", errors.New("client not initialized, call Prepare() first")
	}

	messages := make([]openai.ChatCompletionMessage, len(request.Messages))
	for i, m := range request.Messages {
		messages[i] = openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		}
	}

	log.Debug().
		Str("component", logger.CHAT).
		Str("model", request.Model).
		Float64("temperature", request.Temperature).
		Msg("Sending chat completion request")

	resp, err := self.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       request.Model,
		Messages:    messages,
		Temperature: float32(request.Temperature),
	})
	if err != nil {
		return "", wrapOpenAiError(err)
	}

	if len(resp.Choices) == 0 {
		log.Warn().Str("component", logger.CHAT).Msg("Chat completion returned no choices")
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}

func (self *OpenAiServiceProvider) String() string {
	return fmt.Sprintf("openai-%s", self.displayURL())
}

func (self *OpenAiServiceProvider) displayURL() string {
	if self.options.BaseURL != "" {
		return self.options.BaseURL
	}
	return "default"
}
