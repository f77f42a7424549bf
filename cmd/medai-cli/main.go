// Command medai-cli runs the interactive terminal consultation loop.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"

	consultx "github.com/medai-labs/medai/agent/consult"
	gatewayx "github.com/medai-labs/medai/agent/gateway"
	historyx "github.com/medai-labs/medai/agent/history"
	"github.com/medai-labs/medai/cli"
	configx "github.com/medai-labs/medai/pkg/config"
	_ "github.com/medai-labs/medai/pkg/logger/autoload"
)

func main() {
	cfg := configx.MustNew[gatewayx.GeminiConfig]("GOOGLE")
	if !cfg.Enabled() {
		fmt.Println("\n❌ ERROR: GOOGLE_API_KEY not found!")
		fmt.Println("\nPlease ensure .env file exists with your API key.")
		fmt.Println("Format: GOOGLE_API_KEY=your-key-here")
		os.Exit(1)
	}

	gw, err := gatewayx.NewGemini(context.Background(), *cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init gemini gateway")
	}

	lifecycle := consultx.NewLifecycle(gw, historyx.NewLog())
	app := cli.New(lifecycle, os.Stdin, os.Stdout)

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt)
	go func() {
		<-interrupted
		fmt.Println("\n\n👋 Session interrupted. Take care!")
		os.Exit(0)
	}()

	if err := app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "\n❌ Unexpected error: %v\n", err)
		os.Exit(1)
	}
}
