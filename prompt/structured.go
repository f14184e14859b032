package prompt

import "strings"

const (
	InstructionHeader = "[INSTRUCCIÓN]"
	ContextHeader     = "[CONTEXTO]"
	ConstraintsHeader = "[RESTRICCIONES]"
	ExamplesHeader    = "[EJEMPLOS FEW-SHOT]"
)

// Headers lists the section headers in rendering order.
var Headers = []string{InstructionHeader, ContextHeader, ConstraintsHeader, ExamplesHeader}

// Structured is a system prompt assembled from four independently authored segments.
type Structured struct {
	Instruction string
	Context     string
	Constraints string
	Examples    string
}

// BuildStructuredPrompt renders the segments under their headers in fixed
// order, separated by blank lines. Empty segments keep their header.
func BuildStructuredPrompt(instruction, context, constraints, examples string) string {
	segments := []string{instruction, context, constraints, examples}

	var sb strings.Builder
	for i, header := range Headers {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(header)
		sb.WriteString("\n")
		sb.WriteString(segments[i])
	}
	sb.WriteString("\n")

	return sb.String()
}

func (s Structured) SystemPrompt() string {
	return BuildStructuredPrompt(s.Instruction, s.Context, s.Constraints, s.Examples)
}

func (s Structured) UserPrompt() string {
	return "Input: \"%s\"\nOutput:"
}

func (s Structured) String() string {
	return "structured"
}
