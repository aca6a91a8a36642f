package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogObserver_LevelsBySuccess(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	obs := NewLogObserver(zap.New(core))

	obs.OnCallComplete(LLMCallEvent{Task: TaskPlanGenerate, Provider: ProviderOllama, Model: "m", Attempts: 1, Success: true})
	obs.OnCallComplete(LLMCallEvent{Task: TaskPlanGenerate, Provider: ProviderGemini, Model: "g", Attempts: 2, ErrorCode: "TIMEOUT"})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zap.InfoLevel, entries[0].Level)
	assert.Equal(t, "llm_call", entries[0].Message)
	assert.Equal(t, "llm", entries[0].LoggerName)
	assert.Equal(t, "ollama", entries[0].ContextMap()["provider"])

	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "TIMEOUT", entries[1].ContextMap()["error_code"])
	assert.Equal(t, int64(2), entries[1].ContextMap()["attempts"])
}
