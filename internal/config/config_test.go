package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/drift/internal/llm"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at a temp dir so no real config is read.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".drift", "drift.db"), cfg.DB.Path)
	assert.Equal(t, "Local", cfg.Timezone)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.Endpoint)
	assert.Equal(t, 0, cfg.LLM.MaxRetries)
	assert.InDelta(t, 0.7, cfg.Plan.Temperature, 1e-9)
	assert.Equal(t, 2048, cfg.Plan.MaxTokens)
	assert.Equal(t, 2, cfg.Plan.MaxOriginated)
	assert.Equal(t, CooldownConfig{Task: 1, Aspiration: 3}, cfg.Plan.Cooldown)
}

func TestLoad_FileThenEnv(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "drift.toml")
	content := `
timezone = "Europe/Berlin"

[llm]
provider = "gemini"
model = "gemini-2.0-flash"
api_key = "from-file"

[plan]
max_originated = 1

[plan.cooldown]
aspiration = 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("DRIFT_LLM_MODEL", "gemini-2.5-pro")
	t.Setenv("DRIFT_PLAN_MAX_TOKENS", "1024")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-2.5-pro", cfg.LLM.Model)
	assert.Equal(t, "from-file", cfg.LLM.APIKey)
	assert.Equal(t, 1024, cfg.Plan.MaxTokens)
	assert.Equal(t, 1, cfg.Plan.MaxOriginated)
	assert.Equal(t, 5, cfg.Plan.Cooldown.Aspiration)
	assert.Equal(t, 1, cfg.Plan.Cooldown.Task)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())
}

func TestLoad_MissingExplicitFileIsNotAnError(t *testing.T) {
	isolate(t)
	cfg, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
}

func TestLoad_MalformedFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[llm\nprovider = "), 0o600))

	_, err := Load(viper.New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"provider", map[string]string{"DRIFT_LLM_PROVIDER": "openai"}, "llm.provider"},
		{"timezone", map[string]string{"DRIFT_TIMEZONE": "Mars/Olympus"}, "timezone"},
		{"log format", map[string]string{"DRIFT_LOG_FORMAT": "xml"}, "log.format"},
		{"max tokens", map[string]string{"DRIFT_PLAN_MAX_TOKENS": "0"}, "plan.max_tokens"},
		{"cooldown", map[string]string{"DRIFT_PLAN_COOLDOWN_TASK": "-1"}, "plan.cooldown"},
		{"max originated negative", map[string]string{"DRIFT_PLAN_MAX_ORIGINATED": "-1"}, "plan.max_originated"},
		{"max originated above five", map[string]string{"DRIFT_PLAN_MAX_ORIGINATED": "6"}, "plan.max_originated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(viper.New(), "")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLLMClientConfig(t *testing.T) {
	cfg := Default("/tmp")
	cfg.Plan.TimeoutMs = 90000
	cfg.Plan.Temperature = 0.4

	got := cfg.LLMClientConfig()
	assert.Equal(t, llm.ProviderOllama, got.Provider)
	assert.Equal(t, 90000, got.TaskTimeout(llm.TaskPlanGenerate))
	assert.InDelta(t, 0.4, got.Tasks[llm.TaskPlanGenerate].Temperature, 1e-9)
}

func TestLocation(t *testing.T) {
	cfg := Default("/tmp")
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	cfg.Timezone = "UTC"
	loc, err = cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestWriteFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	want := Default("/data")
	want.LLM.Model = "qwen2.5"

	require.NoError(t, WriteFile(path, want, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded Config
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, want, decoded)

	err = WriteFile(path, want, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	require.NoError(t, WriteFile(path, want, true))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "qwen2.5", cfg.LLM.Model)
	assert.Equal(t, "/data/drift.db", cfg.DB.Path)
}
