package ticket

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Classification is the JSON object the ticket prompt asks the model for.
type Classification struct {
	Categoria        string `json:"categoria" validate:"required,oneof=REDES HARDWARE SOFTWARE ACCESOS REVISION_MANUAL"`
	Urgencia         string `json:"urgencia" validate:"required,oneof=Alta Media Baja"`
	ExplicacionCorta string `json:"explicacion_corta" validate:"required"`
}

// use a single instance of Validate, it caches struct info
var validate = validator.New(validator.WithRequiredStructEnabled())

// Inspect parses a raw model answer and checks it against the expected schema.
// Unknown keys are rejected since the prompt forbids them.
func Inspect(raw string) (*Classification, error) {
	decoder := json.NewDecoder(strings.NewReader(strings.TrimSpace(raw)))
	decoder.DisallowUnknownFields()

	var c Classification
	if err := decoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("answer is not the expected JSON object: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("answer has trailing content after the JSON object")
	}

	if err := validate.Struct(c); err != nil {
		return nil, fmt.Errorf("answer violates schema: %w", err)
	}
	return &c, nil
}
