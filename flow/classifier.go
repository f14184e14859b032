package flow

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"promptlab/ai"
	"promptlab/prompt"
)

// Classifier sends one ticket through a structured system prompt. The answer
// is returned as raw text; nothing here parses it.
type Classifier struct {
	provider ai.AiServiceProvider
	model    string
	template prompt.Structured
	tracker  Tracker
}

func NewClassifier(provider ai.AiServiceProvider, model string, template prompt.Structured, tracker Tracker) *Classifier {
	if tracker == nil {
		tracker = noopTracker{}
	}
	return &Classifier{
		provider: provider,
		model:    model,
		template: template,
		tracker:  tracker,
	}
}

func (c *Classifier) Classify(ctx context.Context, ticket string) (string, error) {
	request := ai.NewCompletionRequest(
		c.model,
		c.template.SystemPrompt(),
		prompt.UserMessage(c.template, ticket),
		ClassificationTemperature,
	)

	zerolog.Ctx(ctx).Debug().Int("ticket_length", len(ticket)).Msg("Requesting ticket classification")

	c.tracker.Update("Evaluando ticket...")
	text, err := c.provider.Complete(ctx, request)
	c.tracker.Clear()
	if err != nil {
		return "", fmt.Errorf("classification: %w", err)
	}

	return text, nil
}
