package console

import (
	"fmt"
	"io"

	"promptlab/ai"
	"promptlab/prompt"
)

const (
	rule     = "========================================================="
	thinRule = "---------------------------------------------------------"
)

// Reporter prints the demo report. Failures go to errOut.
type Reporter struct {
	out     io.Writer
	errOut  io.Writer
	service ai.AiServiceType
}

func NewReporter(out, errOut io.Writer, service ai.AiServiceType) *Reporter {
	return &Reporter{
		out:     out,
		errOut:  errOut,
		service: service,
	}
}

func (r *Reporter) Banner(title string) {
	fmt.Fprintf(r.out, "\n%s\n%s\n%s\n\n", rule, title, rule)
}

func (r *Reporter) Println(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(r.out, line)
	}
}

func (r *Reporter) Persona(index int, persona prompt.Persona) {
	fmt.Fprintf(r.out, "🎭 Personalidad %d (System Prompt): \"%s\"\n\n", index, persona.SystemPrompt())
}

func (r *Reporter) Answer(index int, text string) {
	fmt.Fprintf(r.out, "Respuesta %d: %s\n", index, displayable(text))
}

func (r *Reporter) Separator() {
	fmt.Fprintf(r.out, "\n%s\n\n", thinRule)
}

func (r *Reporter) Classification(text string) {
	fmt.Fprintf(r.out, "🎯 Respuesta del Modelo (JSON Output):\n\n%s\n", displayable(text))
}

func (r *Reporter) Similarity(score float64) {
	fmt.Fprintf(r.out, "📐 Similitud léxica entre respuestas: %.2f\n", score)
}

func (r *Reporter) Failure(kind ai.ErrorKind, err error) {
	if kind == ai.KindAuthentication {
		fmt.Fprintln(r.errOut, "\n❌ Error de Autenticación: La API Key no es válida.")
		fmt.Fprintf(r.errOut, "Asegúrate de haber reemplazado el valor de %s en tu archivo .env por tu API Key real de %s.\n",
			ai.KeyVariable(r.service), ai.DisplayName(r.service))
		return
	}

	fmt.Fprintf(r.errOut, "\n❌ Ocurrió un error al comunicarse con la API de %s:\n", ai.DisplayName(r.service))
	fmt.Fprintln(r.errOut, ai.ErrorMessage(err))
}

// InputFailure reports that no question could be read, so no service was contacted.
func (r *Reporter) InputFailure(err error) {
	fmt.Fprintln(r.errOut, "\n❌ No se recibió ninguna entrada. No se envió ninguna solicitud.")
	fmt.Fprintln(r.errOut, err)
}

// Empty completions are shown as null.
func displayable(text string) string {
	if text == "" {
		return "null"
	}
	return text
}
