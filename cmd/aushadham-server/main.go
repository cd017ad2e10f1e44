package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/HelloOjasMutreja/Aushadham/internal/config"
	"github.com/HelloOjasMutreja/Aushadham/internal/domain/triage"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "aushadham",
		Short:         "Symptom triage questionnaire service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(templatesCmd())
	rootCmd.AddCommand(assessCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the questionnaire API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runServer() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	logger.Info().
		Str("env", cfg.Env).
		Bool("dedup_conditionals", cfg.DedupConditionals).
		Bool("fallback_advice", cfg.FallbackAdvice).
		Msg("config loaded")

	app := fx.New(appOptions(cfg, logger))
	if err := app.Err(); err != nil {
		return fmt.Errorf("build app: %w", err)
	}
	app.Run()
	return nil
}

func templatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "Print the question templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printTemplates(cmd.OutOrStdout())
		},
	}
}

func printTemplates(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, t := range triage.Catalog() {
		fmt.Fprintf(w, "%s (%d questions)\n", t.Family, len(t.Questions))
		for i, q := range t.Questions {
			fmt.Fprintf(w, "  %d\t%s\t%s\t%s\n", i+1, q.ID, q.Weight, q.Text)
			for answer, block := range t.Conditionals[q.ID] {
				for _, f := range block {
					fmt.Fprintf(w, "  ↳ %s\t%s\t%s\t%s\n", answer, f.ID, f.Weight, f.Text)
				}
			}
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
