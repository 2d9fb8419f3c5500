// Command mrm is the Narrator's Console, an absurdist AI chat companion
// for the terminal.
//
// Usage:
//
//	mrm [flags]
//
// Flags:
//
//	-e, --endpoint string   API endpoint URL (default "http://ml:8888/v1")
//	-m, --model string      Model name to use (default "default")
//	-a, --apikey string     API key for authentication
//	-V, --version           Print the version and quit
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/skorotkiewicz/mrm"
	bt "github.com/skorotkiewicz/mrm/bubbletea"
	"github.com/skorotkiewicz/mrm/openai"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd(run).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mrm: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the CLI. The runFn indirection keeps flag wiring
// testable without starting a TUI.
func newRootCmd(runFn func(context.Context, mrm.Config) error) *cobra.Command {
	var cfg mrm.Config

	cmd := &cobra.Command{
		Use:           "mrm",
		Short:         "The Narrator's Console - an absurdist AI chat companion",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runFn(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.Endpoint, "endpoint", "e", mrm.DefaultEndpoint, "API endpoint URL")
	cmd.Flags().StringVarP(&cfg.Model, "model", "m", mrm.DefaultModel, "Model name to use")
	cmd.Flags().StringVarP(&cfg.APIKey, "apikey", "a", "", "API key for authentication")
	// Registering the version flag ourselves gives it the -V shorthand.
	cmd.Flags().BoolP("version", "V", false, "Print the version and quit")

	return cmd
}

func run(ctx context.Context, cfg mrm.Config) error {
	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	var opts []openai.Option
	if cfg.APIKey != "" {
		opts = append(opts, openai.WithAPIKey(cfg.APIKey))
	}
	client := openai.New(cfg.Endpoint, opts...)

	session := mrm.NewSession(mrm.Persona)
	session.Append(mrm.IntroTurn())

	model := bt.New(client, session, cfg, mrm.DefaultTheme())
	if err := bt.Run(ctx, model); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}
