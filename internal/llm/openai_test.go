package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClientCompleteSendsSystemAndUserMessages(t *testing.T) {
	var received openAIRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  {\"answer\":\"ok\"}  "}}]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient(Config{APIKey: "test-key", BaseURL: server.URL + "/", Timeout: 5 * time.Second})
	got, err := client.Complete(context.Background(), "system text", "why am I tired?")
	require.NoError(t, err)

	assert.Equal(t, `{"answer":"ok"}`, got)
	assert.Equal(t, DefaultOpenAIModel, received.Model)
	assert.InDelta(t, 0.7, received.Temperature, 1e-9)
	assert.Equal(t, 500, received.MaxTokens)
	assert.Equal(t, []openAIMessage{
		{Role: "system", Content: "system text"},
		{Role: "user", Content: "why am I tired?"},
	}, received.Messages)
}

func TestOpenAIClientMissingKeyDoesNotCallServer(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewOpenAIClient(Config{BaseURL: server.URL})
	_, err := client.Complete(context.Background(), "system", "question")

	require.ErrorIs(t, err, ErrAPIKeyMissing)
	assert.Contains(t, err.Error(), "API key")
	assert.False(t, called)
}

func TestOpenAIClientSurfacesProviderErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	}))
	defer server.Close()

	client := NewOpenAIClient(Config{APIKey: "bad", BaseURL: server.URL})
	_, err := client.Complete(context.Background(), "system", "question")

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "401"))
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestOpenAIClientEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient(Config{APIKey: "key", BaseURL: server.URL})
	_, err := client.Complete(context.Background(), "system", "question")
	assert.True(t, errors.Is(err, ErrEmptyCompletion))
}

func TestOpenAIClientHonoursContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewOpenAIClient(Config{APIKey: "key", BaseURL: server.URL})
	_, err := client.Complete(ctx, "system", "question")
	require.ErrorIs(t, err, context.Canceled)
}
