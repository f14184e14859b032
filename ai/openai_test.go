package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenAiTestProvider(t *testing.T, handler http.HandlerFunc) AiServiceProvider {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	provider, err := NewAiServiceProvider(OpenAiServiceType, Options{APIKey: "sk-test", BaseURL: server.URL + "/v1"})
	require.NoError(t, err)
	require.NoError(t, provider.Prepare())
	return provider
}

func TestOpenAiComplete(t *testing.T) {
	var received openai.ChatCompletionRequest

	provider := newOpenAiTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1,
			"model": "gpt-3.5-turbo",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "¡Arrr, por el sol!"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	})

	text, err := provider.Complete(context.Background(), NewCompletionRequest("gpt-3.5-turbo", "Eres un pirata.", "¿Por qué el cielo es azul?", 0.7))
	require.NoError(t, err)
	assert.Equal(t, "¡Arrr, por el sol!", text)

	assert.Equal(t, "gpt-3.5-turbo", received.Model)
	assert.Equal(t, float32(0.7), received.Temperature)
	require.Len(t, received.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, received.Messages[0].Role)
	assert.Equal(t, "Eres un pirata.", received.Messages[0].Content)
	assert.Equal(t, openai.ChatMessageRoleUser, received.Messages[1].Role)
	assert.Equal(t, "¿Por qué el cielo es azul?", received.Messages[1].Content)
}

func TestOpenAiCompleteWithoutChoices(t *testing.T) {
	provider := newOpenAiTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-2", "object": "chat.completion", "choices": []}`))
	})

	text, err := provider.Complete(context.Background(), NewCompletionRequest("gpt-3.5-turbo", "s", "u", 0.1))
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestOpenAiCompleteErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantKind   ErrorKind
		wantStatus int
		wantText   string
	}{
		{
			name:       "Invalid key",
			status:     http.StatusUnauthorized,
			body:       `{"error": {"message": "Incorrect API key provided: sk-test.", "type": "invalid_request_error", "param": null, "code": "invalid_api_key"}}`,
			wantKind:   KindAuthentication,
			wantStatus: http.StatusUnauthorized,
			wantText:   "Incorrect API key provided",
		},
		{
			name:       "Rate limited",
			status:     http.StatusTooManyRequests,
			body:       `{"error": {"message": "Rate limit reached", "type": "requests", "param": null, "code": "rate_limit_exceeded"}}`,
			wantKind:   KindOther,
			wantStatus: http.StatusTooManyRequests,
			wantText:   "Rate limit reached",
		},
		{
			name:       "Server error without JSON body",
			status:     http.StatusInternalServerError,
			body:       `upstream exploded`,
			wantKind:   KindOther,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := newOpenAiTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := provider.Complete(context.Background(), NewCompletionRequest("gpt-3.5-turbo", "s", "u", 0.7))
			require.Error(t, err)

			var serviceErr *ServiceError
			require.ErrorAs(t, err, &serviceErr)
			assert.Equal(t, tt.wantStatus, serviceErr.StatusCode)
			assert.Equal(t, tt.wantKind, Classify(err))
			if tt.wantText != "" {
				assert.Contains(t, ErrorMessage(err), tt.wantText)
			}
		})
	}
}

func TestOpenAiCompleteUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	provider, err := NewAiServiceProvider(OpenAiServiceType, Options{APIKey: "sk-test", BaseURL: url + "/v1"})
	require.NoError(t, err)
	require.NoError(t, provider.Prepare())

	_, err = provider.Complete(context.Background(), NewCompletionRequest("gpt-3.5-turbo", "s", "u", 0.7))
	require.Error(t, err)
	assert.Equal(t, KindOther, Classify(err))
	assert.NotEmpty(t, ErrorMessage(err))
}

func TestCompleteBeforePrepare(t *testing.T) {
	for _, serviceType := range ServiceTypes {
		provider, err := NewAiServiceProvider(serviceType, Options{})
		require.NoError(t, err)

		_, err = provider.Complete(context.Background(), NewCompletionRequest("m", "s", "u", 0.7))
		assert.Error(t, err, serviceType)
	}
}
