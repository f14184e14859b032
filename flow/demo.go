package flow

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"promptlab/ai"
	"promptlab/contrast"
	"promptlab/prompt"
	"promptlab/ticket"
)

type PersonaOptions struct {
	Persona1   prompt.Persona
	Persona2   prompt.Persona
	Similarity bool
}

// PersonaDemo contrasts two system prompts against the same question.
type PersonaDemo struct {
	comparator *Comparator
	reporter   Reporter
	model      string
	options    PersonaOptions
}

func NewPersonaDemo(provider ai.AiServiceProvider, model string, reporter Reporter, tracker Tracker, options PersonaOptions) *PersonaDemo {
	return &PersonaDemo{
		comparator: NewComparator(provider, model, reporter, tracker),
		reporter:   reporter,
		model:      model,
		options:    options,
	}
}

func (d *PersonaDemo) Introduce() {
	d.reporter.Banner("🤖 Demo: Integración de LLM (System Prompt vs User Prompt)")
	d.reporter.Println(
		"Este ejemplo demostrará cómo el 'System Prompt' (Instrucciones del sistema)",
		"afecta el comportamiento del modelo frente al mismo 'User Prompt' (Entrada del usuario).",
		"",
		"[Paso 1] Define tu mensaje (User Prompt).",
		`Ejemplo: "¿Por qué el cielo es azul?" o "Explícame qué es la gravedad."`,
	)
}

func (d *PersonaDemo) Question() string {
	return "Ingresa tu pregunta para el modelo: "
}

func (d *PersonaDemo) Execute(ctx context.Context, input string) error {
	d.reporter.Banner(fmt.Sprintf("📡 Enviando peticiones al modelo (%s)...", d.model))

	first, second, err := d.comparator.Compare(ctx, input, d.options.Persona1, d.options.Persona2)
	if err != nil {
		return err
	}

	if d.options.Similarity {
		d.reporter.Separator()
		d.reporter.Similarity(contrast.Similarity(first, second))
	}
	return nil
}

func (d *PersonaDemo) Farewell() string {
	return "🚀 Fin de la demostración."
}

type TicketOptions struct {
	Template prompt.Structured
	Check    bool
}

// TicketDemo classifies one support ticket with a structured prompt.
type TicketDemo struct {
	classifier *Classifier
	reporter   Reporter
	model      string
	options    TicketOptions
}

func NewTicketDemo(provider ai.AiServiceProvider, model string, reporter Reporter, tracker Tracker, options TicketOptions) *TicketDemo {
	return &TicketDemo{
		classifier: NewClassifier(provider, model, options.Template, tracker),
		reporter:   reporter,
		model:      model,
		options:    options,
	}
}

func (d *TicketDemo) Introduce() {
	d.reporter.Banner("🧩 Demo 2: Anatomía de un Prompt de Ingeniería")
	d.reporter.Println(
		"Este ejemplo demuestra cómo estructurar un prompt avanzado para tareas complejas.",
		"Se divide en: Instrucción, Contexto, Restricciones y Ejemplos (Few-shot).",
		"",
		"📝 System Prompt construido para el agente:",
		d.options.Template.SystemPrompt(),
		"[Paso 1] Define los Datos de Entrada (Input).",
		`Ejemplo: "Olvidé la clave de mi correo y la cuenta figura como bloqueada." o "Mi laptop hace un ruido muy fuerte."`,
	)
}

func (d *TicketDemo) Question() string {
	return "Ingresa tu ticket de soporte (Input de usuario): "
}

func (d *TicketDemo) Execute(ctx context.Context, input string) error {
	d.reporter.Banner(fmt.Sprintf("📡 Evaluando ticket (modelo: %s)...", d.model))

	text, err := d.classifier.Classify(ctx, input)
	if err != nil {
		return err
	}
	d.reporter.Classification(text)

	if d.options.Check {
		if _, err := ticket.Inspect(text); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Msg("Classification does not match the expected schema")
		}
	}
	return nil
}

func (d *TicketDemo) Farewell() string {
	return "🚀 Fin de la demostración 2."
}
