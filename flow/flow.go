package flow

import (
	"promptlab/ai"
	"promptlab/prompt"
)

// Fixed per flow. Neither operator input nor configuration changes them.
const (
	PersonaTemperature        = 0.7
	ClassificationTemperature = 0.1
)

// InputSource yields one line of operator text. Close releases the underlying channel.
type InputSource interface {
	ReadLine(question string) (string, error)
	Close() error
}

// Reporter renders results and failures for the operator.
type Reporter interface {
	Banner(title string)
	Println(lines ...string)
	Persona(index int, persona prompt.Persona)
	Answer(index int, text string)
	Separator()
	Classification(text string)
	Similarity(score float64)
	Failure(kind ai.ErrorKind, err error)
	InputFailure(err error)
}

// Tracker shows that a completion is in flight.
type Tracker interface {
	Update(status string)
	Clear()
}

type noopTracker struct{}

func (noopTracker) Update(string) {}
func (noopTracker) Clear()        {}
