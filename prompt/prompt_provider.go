package prompt

import "fmt"

// PromptProvider supplies the system message and the user message template
// (one %s for the operator input) for a request.
type PromptProvider interface {
	SystemPrompt() string
	UserPrompt() string
	String() string
}

// UserMessage renders the provider's user template around input.
func UserMessage(p PromptProvider, input string) string {
	return fmt.Sprintf(p.UserPrompt(), input)
}
