package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/drift/internal/llm"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".drift"
	envPrefix  = "DRIFT"

	fileMode        = 0o600
	dirMode         = 0o700
	tempFilePattern = ".config-*.toml.tmp"

	maxOriginatedLimit = 5
)

type Config struct {
	DB       DBConfig   `mapstructure:"db" toml:"db"`
	Timezone string     `mapstructure:"timezone" toml:"timezone"`
	Log      LogConfig  `mapstructure:"log" toml:"log"`
	LLM      LLMConfig  `mapstructure:"llm" toml:"llm"`
	Plan     PlanConfig `mapstructure:"plan" toml:"plan"`
}

type DBConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

type LLMConfig struct {
	Provider   string `mapstructure:"provider" toml:"provider"`
	Endpoint   string `mapstructure:"endpoint" toml:"endpoint"`
	Model      string `mapstructure:"model" toml:"model"`
	APIKey     string `mapstructure:"api_key" toml:"api_key"`
	TimeoutMs  int    `mapstructure:"timeout_ms" toml:"timeout_ms"`
	MaxRetries int    `mapstructure:"max_retries" toml:"max_retries"`
	LogCalls   bool   `mapstructure:"log_calls" toml:"log_calls"`
}

type PlanConfig struct {
	Temperature   float64        `mapstructure:"temperature" toml:"temperature"`
	MaxTokens     int            `mapstructure:"max_tokens" toml:"max_tokens"`
	TimeoutMs     int            `mapstructure:"timeout_ms" toml:"timeout_ms"`
	MaxOriginated int            `mapstructure:"max_originated" toml:"max_originated"`
	Cooldown      CooldownConfig `mapstructure:"cooldown" toml:"cooldown"`
}

type CooldownConfig struct {
	Task       int `mapstructure:"task" toml:"task"`
	Aspiration int `mapstructure:"aspiration" toml:"aspiration"`
}

// Dir is the directory holding the config file and the default database.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, configDir), nil
}

// DefaultPath is where Load looks for the config file when none is given.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configName+"."+configType), nil
}

// Default returns the built-in configuration. dir is the base for the
// database path.
func Default(dir string) Config {
	llmDefaults := llm.DefaultConfig()
	plan := llmDefaults.Tasks[llm.TaskPlanGenerate]
	return Config{
		DB:       DBConfig{Path: filepath.Join(dir, "drift.db")},
		Timezone: "Local",
		Log:      LogConfig{Level: "warn", Format: "console"},
		LLM: LLMConfig{
			Provider:   string(llmDefaults.Provider),
			Endpoint:   llmDefaults.Endpoint,
			Model:      llmDefaults.Model,
			TimeoutMs:  llmDefaults.TimeoutMs,
			MaxRetries: llmDefaults.MaxRetries,
		},
		Plan: PlanConfig{
			Temperature:   plan.Temperature,
			MaxTokens:     plan.MaxTokens,
			TimeoutMs:     plan.TimeoutMs,
			MaxOriginated: 2,
			Cooldown:      CooldownConfig{Task: 1, Aspiration: 3},
		},
	}
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("db.path", d.DB.Path)
	v.SetDefault("timezone", d.Timezone)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("llm.provider", d.LLM.Provider)
	v.SetDefault("llm.endpoint", d.LLM.Endpoint)
	v.SetDefault("llm.model", d.LLM.Model)
	v.SetDefault("llm.api_key", d.LLM.APIKey)
	v.SetDefault("llm.timeout_ms", d.LLM.TimeoutMs)
	v.SetDefault("llm.max_retries", d.LLM.MaxRetries)
	v.SetDefault("llm.log_calls", d.LLM.LogCalls)
	v.SetDefault("plan.temperature", d.Plan.Temperature)
	v.SetDefault("plan.max_tokens", d.Plan.MaxTokens)
	v.SetDefault("plan.timeout_ms", d.Plan.TimeoutMs)
	v.SetDefault("plan.max_originated", d.Plan.MaxOriginated)
	v.SetDefault("plan.cooldown.task", d.Plan.Cooldown.Task)
	v.SetDefault("plan.cooldown.aspiration", d.Plan.Cooldown.Aspiration)
}

// Load reads defaults, then the config file, then DRIFT_* environment
// variables. path selects the file; empty means DefaultPath. A missing file
// is not an error.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	setDefaults(v, Default(dir))

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DB.Path) == "" {
		return errors.New("db.path is empty")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	switch llm.Provider(c.LLM.Provider) {
	case llm.ProviderOllama, llm.ProviderGemini:
	default:
		return fmt.Errorf("llm.provider %q is invalid (valid: ollama, gemini)", c.LLM.Provider)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format %q is invalid (valid: json, console)", c.Log.Format)
	}
	if c.Plan.MaxTokens <= 0 {
		return fmt.Errorf("plan.max_tokens must be > 0, got %d", c.Plan.MaxTokens)
	}
	if c.Plan.MaxOriginated < 0 || c.Plan.MaxOriginated > maxOriginatedLimit {
		return fmt.Errorf("plan.max_originated must be between 0 and %d, got %d", maxOriginatedLimit, c.Plan.MaxOriginated)
	}
	if c.Plan.Cooldown.Task < 0 || c.Plan.Cooldown.Aspiration < 0 {
		return errors.New("plan.cooldown values must be >= 0")
	}
	return nil
}

// Location resolves the configured timezone. "Local" and "" mean the
// system zone.
func (c *Config) Location() (*time.Location, error) {
	switch c.Timezone {
	case "", "Local":
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// LLMClientConfig maps the llm and plan sections onto the client config.
func (c *Config) LLMClientConfig() llm.LLMConfig {
	return llm.LLMConfig{
		Provider:   llm.Provider(c.LLM.Provider),
		LogCalls:   c.LLM.LogCalls,
		Endpoint:   c.LLM.Endpoint,
		Model:      c.LLM.Model,
		APIKey:     c.LLM.APIKey,
		TimeoutMs:  c.LLM.TimeoutMs,
		MaxRetries: c.LLM.MaxRetries,
		Tasks: map[llm.TaskType]llm.TaskConfig{
			llm.TaskPlanGenerate: {
				Temperature: c.Plan.Temperature,
				MaxTokens:   c.Plan.MaxTokens,
				TimeoutMs:   c.Plan.TimeoutMs,
			},
		},
	}
}

// Encode renders c as TOML.
func Encode(c Config) ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// WriteFile writes c to path through a temp file and rename. An existing
// file is only replaced when overwrite is set.
func WriteFile(path string, c Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := Encode(c)
	if err != nil {
		return err
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}
	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}
	if err := tempFile.Chmod(fileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}
	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}
	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}
	cleanup = false
	return nil
}
