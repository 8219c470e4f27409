package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"dsa-tutor/internal/config"
	"dsa-tutor/internal/di"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "tutor",
		Short:        "DSA tutor backend",
		Long:         "tutor fetches LeetCode and Codeforces problems and serves an AI tutor that guides students through them.",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if configPath != "" {
				return os.Setenv(config.ConfigPathEnv, configPath)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $TUTOR_CONFIG or ./tutor.yaml)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API and the daily warm-up scheduler",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "fetch <identifier>",
			Short: "Print a problem as JSON",
			Long:  "fetch resolves a LeetCode slug, a LeetCode problem URL or a Codeforces problem URL and prints the problem.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return fetch(cmd.Context(), cmd, args[0])
			},
		},
	)
	return root
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	application, cleanup, err := di.InitializeApp()
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		return fmt.Errorf("application runtime error: %w", err)
	}
	return nil
}

func fetch(ctx context.Context, cmd *cobra.Command, identifier string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	resolver, err := di.InitializeResolver()
	if err != nil {
		return fmt.Errorf("initialize resolver: %w", err)
	}

	problem, err := resolver.GetProblemData(ctx, identifier)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(problem)
}
