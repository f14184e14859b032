package ai

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"Unauthorized", &ServiceError{Service: "openai", StatusCode: 401, Message: "bad key"}, KindAuthentication},
		{"Wrapped unauthorized", fmt.Errorf("persona 1: %w", &ServiceError{StatusCode: 401}), KindAuthentication},
		{"Forbidden", &ServiceError{StatusCode: 403}, KindOther},
		{"Server error", &ServiceError{StatusCode: 500}, KindOther},
		{"No status", &ServiceError{Message: "connection refused"}, KindOther},
		{"Plain error", errors.New("boom"), KindOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "bad key", ErrorMessage(fmt.Errorf("wrapped: %w", &ServiceError{StatusCode: 401, Message: "bad key"})))
	assert.Equal(t, "boom", ErrorMessage(errors.New("boom")))
}

func TestServiceErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := &ServiceError{Service: "openai", Message: cause.Error(), Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "openai: dial tcp: connection refused", err.Error())
	assert.Equal(t, "openai: status 500: oops", (&ServiceError{Service: "openai", StatusCode: 500, Message: "oops"}).Error())
}

func TestNewCompletionRequest(t *testing.T) {
	req := NewCompletionRequest("gpt-3.5-turbo", "system text", "user text", 0.1)

	require.Len(t, req.Messages, 2)
	assert.Equal(t, Message{Role: RoleSystem, Content: "system text"}, req.Messages[0])
	assert.Equal(t, Message{Role: RoleUser, Content: "user text"}, req.Messages[1])
	assert.Equal(t, "system text", req.SystemPrompt())
	assert.Equal(t, "user text", req.UserPrompt())
	assert.Equal(t, 0.1, req.Temperature)
}

func TestNewAiServiceProviderUnknown(t *testing.T) {
	_, err := NewAiServiceProvider("gemini", Options{})
	assert.ErrorIs(t, err, ErrFailedPreparation)
}
