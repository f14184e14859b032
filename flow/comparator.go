package flow

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"promptlab/ai"
	"promptlab/prompt"
)

// Comparator runs the same user input against two personas, one after the other.
type Comparator struct {
	provider ai.AiServiceProvider
	model    string
	reporter Reporter
	tracker  Tracker
}

func NewComparator(provider ai.AiServiceProvider, model string, reporter Reporter, tracker Tracker) *Comparator {
	if tracker == nil {
		tracker = noopTracker{}
	}
	return &Comparator{
		provider: provider,
		model:    model,
		reporter: reporter,
		tracker:  tracker,
	}
}

// Compare issues the persona 1 request, reports it, and only then issues the
// persona 2 request. A failure on the first call aborts before the second.
func (c *Comparator) Compare(ctx context.Context, userPrompt string, persona1, persona2 prompt.Persona) (string, string, error) {
	first, err := c.ask(ctx, 1, userPrompt, persona1)
	if err != nil {
		return "", "", err
	}
	c.reporter.Separator()

	second, err := c.ask(ctx, 2, userPrompt, persona2)
	if err != nil {
		return first, "", err
	}

	return first, second, nil
}

func (c *Comparator) ask(ctx context.Context, index int, userPrompt string, persona prompt.Persona) (string, error) {
	c.reporter.Persona(index, persona)

	request := ai.NewCompletionRequest(
		c.model,
		persona.SystemPrompt(),
		prompt.UserMessage(persona, userPrompt),
		PersonaTemperature,
	)

	zerolog.Ctx(ctx).Debug().
		Int("persona_index", index).
		Str("persona", persona.String()).
		Msg("Requesting persona completion")

	c.tracker.Update(fmt.Sprintf("Personalidad %d: esperando respuesta...", index))
	text, err := c.provider.Complete(ctx, request)
	c.tracker.Clear()
	if err != nil {
		return "", fmt.Errorf("persona %d (%s): %w", index, persona, err)
	}

	c.reporter.Answer(index, text)
	return text, nil
}
