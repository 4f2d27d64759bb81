// Package main is the entry point for the noteza CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/csheth/noteza/internal/assistant"
	"github.com/csheth/noteza/internal/config"
	"github.com/csheth/noteza/internal/llm"
	"github.com/csheth/noteza/internal/notes"
	"github.com/csheth/noteza/internal/observability"
	"github.com/csheth/noteza/internal/tui"
)

// version is set at build time via ldflags.
var version = "dev"

// errReported marks failures whose message was already printed.
var errReported = errors.New("already reported")

var rootCmd = &cobra.Command{
	Use:   "noteza",
	Short: "Generate structured study notes for any topic",
	Long: `noteza asks a hosted model for study notes on a topic at a Brief or
Detailed level. The interactive view keeps the last notes of the session in a
history panel and exports the selected notes as Markdown or PDF.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	cobra.OnInitialize(initConfig)
	config.SetDefaults(viper.GetViper())

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./noteza.yaml or ~/.config/noteza/noteza.yaml)")
	flags.String("provider", "", "generation provider: gemini, ollama, openai or mock")
	flags.String("model", "", "model name (default: gemini-2.5-flash for gemini)")
	flags.String("endpoint", "", "custom API endpoint or Ollama host")
	flags.String("export-dir", "", "directory for exported notes (default: current directory)")
	flags.String("log-file", "", "log file path (default: noteza.log in the user cache dir)")
	for key, name := range map[string]string{
		config.KeyProvider:  "provider",
		config.KeyModel:     "model",
		config.KeyEndpoint:  "endpoint",
		config.KeyExportDir: "export-dir",
		config.KeyLogFile:   "log-file",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(name))
	}

	rootCmd.Flags().Bool("no-alt-screen", false, "disable the alternate screen buffer")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	used, err := config.ReadFile(viper.GetViper(), cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if used != "" {
		observability.Logger().Info("using config file", "path", used)
	}
}

// setup resolves configuration, opens the log sink, and builds the client.
// The returned closer flushes the log file.
func setup(ctx context.Context) (config.Config, llm.Client, io.Closer, error) {
	cfg, err := config.Load(viper.GetViper(), config.DefaultSources())
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		if errors.Is(err, llm.ErrMissingAPIKey) {
			fmt.Fprintln(os.Stderr, config.MissingKeyMessage)
			return config.Config{}, nil, nil, errReported
		}
		return config.Config{}, nil, nil, err
	}

	level, _ := observability.ParseLevel(cfg.LogLevel)
	logFile, err := observability.OpenLogFile(cfg.LogFile)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger := observability.Init(logFile, level)

	client, err := llm.NewFromConfig(ctx, cfg.LLM())
	if err != nil {
		_ = logFile.Close()
		return config.Config{}, nil, nil, err
	}
	logger.Info("noteza starting", "version", version, "provider", client.Name(), "export_dir", cfg.ExportDir)
	return cfg, client, logFile, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, client, closer, err := setup(cmd.Context())
	if err != nil {
		return err
	}
	defer closer.Close()

	noAltScreen, _ := cmd.Flags().GetBool("no-alt-screen")
	opts := []tea.ProgramOption{}
	if cfg.AltScreen && !noAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	ctx, a := newSession(ctx, client)
	program := tea.NewProgram(
		tui.New(tui.Config{
			Assistant:     a,
			ExportDir:     cfg.ExportDir,
			MarkdownStyle: cfg.MarkdownStyle,
			Logger:        observability.LoggerFromContext(ctx),
			Context:       ctx,
		}),
		append(opts, tea.WithContext(ctx))...,
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

// newSession starts an assistant whose log lines carry a fresh session ID.
// The returned context carries the same ID.
func newSession(ctx context.Context, client llm.Client) (context.Context, *assistant.Assistant) {
	ctx = observability.WithSessionID(ctx, string(notes.NewID()))
	logger := observability.LoggerFromContext(ctx)
	return ctx, assistant.New(client, logger.With("component", "assistant"))
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
