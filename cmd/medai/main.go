// Command medai runs the desktop-style terminal UI of the AI healthcare
// assistant.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	consultx "github.com/medai-labs/medai/agent/consult"
	contractx "github.com/medai-labs/medai/agent/contract"
	gatewayx "github.com/medai-labs/medai/agent/gateway"
	historyx "github.com/medai-labs/medai/agent/history"
	configx "github.com/medai-labs/medai/pkg/config"
	_ "github.com/medai-labs/medai/pkg/logger/autoload"
	"github.com/medai-labs/medai/tui"
)

type AppConfig struct {
	LLMProvider string `envconfig:"LLM_PROVIDER" default:"gemini"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("")

	gw := buildGateway(context.Background(), appCfg.LLMProvider)
	if gw == nil {
		log.Warn().Msg("no delegate api key configured, running in demo mode (consultation disabled)")
	}

	hist := historyx.NewLog()
	lifecycle := consultx.NewLifecycle(gw, hist)

	program := tea.NewProgram(tui.New(lifecycle, hist), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "medai:", err)
		os.Exit(1)
	}
}

// buildGateway returns nil when no credential is configured; the lifecycle
// then runs in demo mode with consultation disabled.
func buildGateway(ctx context.Context, provider string) contractx.Gateway {
	switch provider {
	case "openrouter":
		cfg := configx.MustNew[gatewayx.OpenRouterConfig]("OPENROUTER")
		if !cfg.Enabled() {
			return nil
		}
		gw, err := gatewayx.NewOpenRouter(*cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("init openrouter gateway")
		}
		return gw
	default:
		cfg := configx.MustNew[gatewayx.GeminiConfig]("GOOGLE")
		if !cfg.Enabled() {
			return nil
		}
		gw, err := gatewayx.NewGemini(ctx, *cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("init gemini gateway")
		}
		return gw
	}
}
