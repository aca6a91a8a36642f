package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiClient_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "gemini-test:generateContent"), r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Contains(t, body, "systemInstruction")
		assert.Contains(t, body, "generationConfig")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "hello from gemini"}]}}],
			"modelVersion": "gemini-test-001"
		}`))
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Model = "gemini-test"
	cfg.APIKey = "test-key"
	cfg.Endpoint = srv.URL

	obs := &recordingObserver{}
	client, err := NewGeminiClient(context.Background(), cfg, obs)
	require.NoError(t, err)

	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:         TaskPlanGenerate,
		SystemPrompt: "be gentle",
		UserPrompt:   "plan my day",
	})
	require.NoError(t, err)
	assert.Equal(t, "hello from gemini", resp.Text)
	assert.Equal(t, "gemini-test-001", resp.Model)
	require.Len(t, obs.events, 1)
	assert.Equal(t, ProviderGemini, obs.events[0].Provider)
}

func TestGeminiClient_Generate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error": {"code": 500, "message": "boom", "status": "INTERNAL"}}`))
	}))
	defer srv.Close()

	cfg := DefaultConfig()
	cfg.Model = "gemini-test"
	cfg.APIKey = "test-key"
	cfg.Endpoint = srv.URL

	client, err := NewGeminiClient(context.Background(), cfg, nil)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), GenerateRequest{Task: TaskPlanGenerate, UserPrompt: "x"})
	assert.ErrorIs(t, err, ErrRetryExhausted)
}
