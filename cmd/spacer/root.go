package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/bethropolis/spacer/internal/config"
	"github.com/bethropolis/spacer/internal/logger"
)

var (
	flags     config.Flags
	dryRun    bool
	colorMode string

	cfg       *config.Config // Set by loadConfig before any subcommand runs
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   config.AppName,
	Short: "Spacing-aware text removal and insertion",
	Long: `spacer removes or inserts text in a file and re-spaces the surrounding
words and punctuation: one space between words, none before closing
punctuation, and none left dangling at either end of a line.

Positions are LINE:COL, with 1-based lines and 0-based character columns.
An end column of $ means the end of that line.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	flags.Register(pf)
	pf.BoolVarP(&dryRun, "dry-run", "n", false, "Show the change without writing the file")
	pf.StringVar(&colorMode, "color", "auto", "Colorize output: auto, always, never")

	// Add subcommands
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(insertCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the configuration layers and starts the logger.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadConfig(*flags.ConfigFilePath, &flags)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	logger.SetDebugFilter(*flags.DebugLog)
	closer, err := logger.InitWithConfig(loaded.Logger)
	if err != nil {
		return err
	}
	cfg, logCloser = loaded, closer

	logger.Debugf("spacer %s: rules %s", version, cfg.RuleSet().Summary())
	return nil
}

// commandContext returns the command's context, which is nil when a run
// function is called directly rather than through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// currentConfig returns the loaded configuration, or defaults.
func currentConfig() *config.Config {
	if cfg == nil {
		return config.NewDefaultConfig()
	}
	return cfg
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
