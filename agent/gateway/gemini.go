package gateway

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	contractx "github.com/medai-labs/medai/agent/contract"
)

// GeminiConfig configures the default delegate binding. The API key is the
// single opaque credential the whole system depends on; its absence flips the
// application into demo mode.
type GeminiConfig struct {
	APIKey      string        `envconfig:"API_KEY" split_words:"true"`
	Model       string        `envconfig:"MODEL" split_words:"true" default:"gemini-2.5-flash"`
	Temperature float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.7"`
	Timeout     time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"60s"`
}

// Enabled reports whether a credential is configured. This is checked at
// startup, independent of any invocation.
func (c GeminiConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// GeminiGateway invokes the Gemini API through the google.golang.org/genai
// SDK.
type GeminiGateway struct {
	client      *genai.Client
	model       string
	temperature float32
}

var _ contractx.Gateway = (*GeminiGateway)(nil)

func NewGemini(ctx context.Context, cfg GeminiConfig) (*GeminiGateway, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("%w: gemini api key is required", contractx.ErrConfiguration)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     strings.TrimSpace(cfg.APIKey),
		HTTPClient: &http.Client{Timeout: timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create gemini client: %v", contractx.ErrConfiguration, err)
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gemini-2.5-flash"
	}

	return &GeminiGateway{
		client:      client,
		model:       model,
		temperature: cfg.Temperature,
	}, nil
}

func (g *GeminiGateway) Invoke(ctx context.Context, p contractx.Prompt) (string, error) {
	genCfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(g.temperature),
	}
	if strings.TrimSpace(p.System) != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(p.System, genai.RoleUser)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(p.User), genCfg)
	if err != nil {
		return "", fmt.Errorf("%w: gemini generate: %v", contractx.ErrDelegate, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty model response", contractx.ErrDelegate)
	}
	return text, nil
}
