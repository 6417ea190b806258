package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/bethropolis/spacer/internal/config"
)

var (
	version = "dev"
	commit  = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE:  runVersion,
	// No configuration needed to print a version.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", config.AppName, version)
	fmt.Fprintf(out, "Commit: %s\n", commit)
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
	fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}
