package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	contractx "github.com/medai-labs/medai/agent/contract"
)

// OpenRouterConfig configures the OpenAI-compatible delegate binding, kept as
// an alternate provider for deployments without direct Gemini access.
type OpenRouterConfig struct {
	BaseURL     string        `envconfig:"BASE_URL" split_words:"true" default:"https://openrouter.ai/api/v1"`
	APIKey      string        `envconfig:"API_KEY" split_words:"true"`
	Model       string        `envconfig:"MODEL" split_words:"true" default:"google/gemini-2.5-flash"`
	MaxTokens   int64         `envconfig:"MAX_TOKENS" split_words:"true" default:"2000"`
	Temperature float32       `envconfig:"TEMPERATURE" split_words:"true" default:"0.7"`
	Timeout     time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"30s"`
	SiteURL     string        `envconfig:"SITE_URL" split_words:"true"`
	SiteName    string        `envconfig:"SITE_NAME" split_words:"true"`
}

func (c OpenRouterConfig) Enabled() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// OpenRouterGateway invokes an OpenAI-compatible chat completion endpoint.
type OpenRouterGateway struct {
	client      *openaisdk.Client
	model       string
	maxTokens   int64
	temperature float64
}

var _ contractx.Gateway = (*OpenRouterGateway)(nil)

func NewOpenRouter(cfg OpenRouterConfig) (*OpenRouterGateway, error) {
	if !cfg.Enabled() {
		return nil, fmt.Errorf("%w: openrouter api key is required", contractx.ErrConfiguration)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
	}
	if trimmed := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"); trimmed != "" {
		opts = append(opts, option.WithBaseURL(trimmed))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	// OpenRouter attribution headers
	if cfg.SiteURL != "" {
		opts = append(opts, option.WithHeader("HTTP-Referer", cfg.SiteURL))
	}
	if cfg.SiteName != "" {
		opts = append(opts, option.WithHeader("X-Title", cfg.SiteName))
	}

	client := openaisdk.NewClient(opts...)

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		return nil, fmt.Errorf("%w: openrouter model is required", contractx.ErrConfiguration)
	}

	return &OpenRouterGateway{
		client:      &client,
		model:       model,
		maxTokens:   cfg.MaxTokens,
		temperature: float64(cfg.Temperature),
	}, nil
}

func (g *OpenRouterGateway) Invoke(ctx context.Context, p contractx.Prompt) (string, error) {
	messages := make([]openaisdk.ChatCompletionMessageParamUnion, 0, 2)
	if strings.TrimSpace(p.System) != "" {
		messages = append(messages, openaisdk.SystemMessage(p.System))
	}
	messages = append(messages, openaisdk.UserMessage(p.User))

	params := openaisdk.ChatCompletionNewParams{
		Model:       openaisdk.ChatModel(g.model),
		Messages:    messages,
		Temperature: openaisdk.Float(g.temperature),
	}
	if g.maxTokens > 0 {
		params.MaxCompletionTokens = openaisdk.Int(g.maxTokens)
	}

	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: chat completion: %v", contractx.ErrDelegate, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no completion choices returned", contractx.ErrDelegate)
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("%w: empty model response", contractx.ErrDelegate)
	}
	return text, nil
}
