package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnthropicCompleteErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
	}{
		{
			name:     "Invalid key",
			status:   http.StatusUnauthorized,
			body:     `{"type": "error", "error": {"type": "authentication_error", "message": "invalid x-api-key"}}`,
			wantKind: KindAuthentication,
		},
		{
			name:     "Overloaded",
			status:   529,
			body:     `{"type": "error", "error": {"type": "overloaded_error", "message": "Overloaded"}}`,
			wantKind: KindOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			var received map[string]any

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				_ = json.NewDecoder(r.Body).Decode(&received)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			provider, err := NewAiServiceProvider(AnthropicServiceType, Options{APIKey: "sk-ant-test", BaseURL: server.URL})
			require.NoError(t, err)
			require.NoError(t, provider.Prepare())

			_, err = provider.Complete(context.Background(), NewCompletionRequest("claude-3-5-haiku-latest", "Eres un maestro.", "Hola", 0.1))
			require.Error(t, err)

			var serviceErr *ServiceError
			require.ErrorAs(t, err, &serviceErr)
			assert.Equal(t, tt.status, serviceErr.StatusCode)
			assert.Equal(t, tt.wantKind, Classify(err))
			assert.Equal(t, int32(1), calls.Load(), "requests are never retried")

			assert.Equal(t, 0.1, received["temperature"])
			assert.Equal(t, "claude-3-5-haiku-latest", received["model"])
			system, ok := received["system"].([]any)
			require.True(t, ok)
			require.Len(t, system, 1)
			assert.Equal(t, "Eres un maestro.", system[0].(map[string]any)["text"])

			messages, ok := received["messages"].([]any)
			require.True(t, ok)
			require.Len(t, messages, 1)
			assert.Equal(t, "user", messages[0].(map[string]any)["role"])
		})
	}
}

func TestAnthropicComplete(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "Text block",
			content: `[{"type": "text", "text": "hola"}]`,
			want:    "hola",
		},
		{
			name:    "No content blocks",
			content: `[]`,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v1/messages", r.URL.Path)
				assert.Equal(t, "sk-ant-test", r.Header.Get("X-Api-Key"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{
					"id": "msg_01",
					"type": "message",
					"role": "assistant",
					"model": "claude-3-5-haiku-latest",
					"content": ` + tt.content + `,
					"stop_reason": "end_turn",
					"stop_sequence": null,
					"usage": {"input_tokens": 10, "output_tokens": 1}
				}`))
			}))
			defer server.Close()

			provider, err := NewAiServiceProvider(AnthropicServiceType, Options{APIKey: "sk-ant-test", BaseURL: server.URL})
			require.NoError(t, err)
			require.NoError(t, provider.Prepare())

			text, err := provider.Complete(context.Background(), NewCompletionRequest("claude-3-5-haiku-latest", "Eres un pirata.", "Hola", 0.7))
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}
