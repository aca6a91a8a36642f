package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// geminiClient implements LLMClient on the Google GenAI SDK.
type geminiClient struct {
	cfg      LLMConfig
	client   *genai.Client
	observer Observer
}

// NewGeminiClient creates an LLMClient backed by the Gemini API. A non-empty
// cfg.Endpoint replaces the SDK's base URL.
func NewGeminiClient(ctx context.Context, cfg LLMConfig, observer Observer) (LLMClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required (set llm.api_key or DRIFT_LLM_API_KEY)")
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	cfg.Provider = ProviderGemini

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.Endpoint != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.Endpoint}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return &geminiClient{cfg: cfg, client: client, observer: observer}, nil
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	return runWithRetries(ctx, c.cfg, c.observer, req, func(ctx context.Context, p callParams) (string, string, error) {
		config := &genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(p.Temperature)),
		}
		if p.MaxTokens > 0 {
			config.MaxOutputTokens = int32(p.MaxTokens)
		}
		if p.System != "" {
			config.SystemInstruction = genai.NewContentFromText(p.System, genai.RoleUser)
		}

		resp, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(p.Prompt), config)
		if err != nil {
			return "", "", fmt.Errorf("gemini generate: %w", err)
		}
		return resp.Text(), resp.ModelVersion, nil
	})
}

// Available fetches the configured model's metadata to check the backend is reachable.
func (c *geminiClient) Available(ctx context.Context) bool {
	_, err := c.client.Models.Get(ctx, c.cfg.Model, nil)
	return err == nil
}
