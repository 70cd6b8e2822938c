package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/uxlab/internal/app"
	"github.com/abhisek/uxlab/internal/chat"
	"github.com/abhisek/uxlab/internal/llm"
	"github.com/abhisek/uxlab/internal/screen"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the interactive app (same as running uxlab with no command)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	provider, llmCfg, err := buildProvider(cmd, e)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "The AI tutor will be unavailable.")
	}

	chatCfg := chat.DefaultConfig()
	chatCfg.Logger = e.logger

	return app.Run(cmd.Context(), screen.Deps{
		Progress:    e.progress,
		Catalog:     e.catalog,
		Assistant:   chat.New(provider, chatCfg),
		Logger:      e.logger,
		ChatTimeout: llmCfg.Timeout,
	})
}

// errNoProvider is returned when neither UXLAB_LLM_PROVIDER nor a standard
// API key is set.
var errNoProvider = errors.New("no API key found; set ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY or OPENROUTER_API_KEY")

// buildProvider resolves the LLM configuration and constructs the provider
// stack. The returned config is usable even when err is non-nil.
func buildProvider(cmd *cobra.Command, e *env) (llm.Provider, llm.Config, error) {
	cfg, ok := llm.ResolveConfig()
	if !ok {
		return nil, llm.DefaultConfig(), errNoProvider
	}
	p, err := llm.NewProvider(cmd.Context(), cfg, e.store.EventRepo(), e.logger)
	if err != nil {
		return nil, cfg, err
	}
	e.logger.Info("llm provider ready", zap.String("provider", cfg.Provider), zap.String("model", p.ModelID()))
	return p, cfg, nil
}
