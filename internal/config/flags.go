// internal/config/flags.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Flags holds values parsed from command-line flags.
// Only flags marked Changed by the parser override the config.
type Flags struct {
	ConfigFilePath *string
	EnvFile        *string
	LogLevel       *string
	LogFilePath    *string
	// Logger filters
	EnableTags   *string
	DisableTags  *string
	EnablePkgs   *string
	DisablePkgs  *string
	EnableFiles  *string
	DisableFiles *string
	DebugLog     *bool
	// Spacing rules
	Aggressive        *bool
	PreserveTabs      *bool
	PreserveIndent    *bool
	MaxOperationSize  *int
	Timeout           *time.Duration
	NoSpaceAfter      *string
	NoSpaceBefore     *string
	AlwaysSpaceAfter  *string
	AlwaysSpaceBefore *string

	fs *pflag.FlagSet
}

// Register defines the flags on fs, typically a command's persistent flags.
func (f *Flags) Register(fs *pflag.FlagSet) {
	f.fs = fs
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML or YAML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.EnvFile = fs.String("env-file", DefaultEnvFileName, "Path to a .env file with "+EnvPrefix+"* variables")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	f.DebugLog = fs.Bool("debug-log", false, "Enable verbose debug logging for the logger filtering system")

	f.Aggressive = fs.Bool("aggressive", true, "Collapse whitespace runs around the edit to one space")
	f.PreserveTabs = fs.Bool("preserve-tabs", false, "Keep runs made only of tabs when collapsing")
	f.PreserveIndent = fs.Bool("preserve-indent", false, "Keep the leading indentation of the edited line")
	f.MaxOperationSize = fs.Int("max-size", 0, "Largest span or text an operation accepts, in characters")
	f.Timeout = fs.Duration("timeout", 0, "Deadline for a single operation (0 disables it)")
	f.NoSpaceAfter = fs.String("no-space-after", "", "Characters never followed by a space")
	f.NoSpaceBefore = fs.String("no-space-before", "", "Characters never preceded by a space")
	f.AlwaysSpaceAfter = fs.String("always-space-after", "", "Characters always followed by a space")
	f.AlwaysSpaceBefore = fs.String("always-space-before", "", "Characters always preceded by a space")
}

// ApplyOverrides updates cfg with the flags that were set on the command line.
func (f *Flags) ApplyOverrides(cfg *Config) {
	if f.fs == nil {
		return
	}
	// VisitAll + Changed also sees flags parsed through a merged set,
	// which is how cobra handles persistent flags.
	f.fs.VisitAll(func(fl *pflag.Flag) {
		if !fl.Changed {
			return
		}
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath // Empty string is valid
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(*f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(*f.DisableFiles)

		case "aggressive":
			cfg.Spacing.AggressiveSpacing = *f.Aggressive
		case "preserve-tabs":
			cfg.Spacing.PreserveTabs = *f.PreserveTabs
		case "preserve-indent":
			cfg.Spacing.PreserveIndent = *f.PreserveIndent
		case "max-size":
			if *f.MaxOperationSize > 0 {
				cfg.Spacing.MaxOperationSize = *f.MaxOperationSize
			}
		case "timeout":
			if *f.Timeout >= 0 {
				cfg.Spacing.TimeoutMS = timeoutMS(*f.Timeout)
			}
		case "no-space-after":
			cfg.Spacing.Punctuation.NoSpaceAfter = *f.NoSpaceAfter
		case "no-space-before":
			cfg.Spacing.Punctuation.NoSpaceBefore = *f.NoSpaceBefore
		case "always-space-after":
			cfg.Spacing.Punctuation.AlwaysSpaceAfter = *f.AlwaysSpaceAfter
		case "always-space-before":
			cfg.Spacing.Punctuation.AlwaysSpaceBefore = *f.AlwaysSpaceBefore
		}
	})
}

// timeoutMS converts d to whole milliseconds, rounding up so a positive
// sub-millisecond timeout does not become 0 (no deadline).
func timeoutMS(d time.Duration) int {
	return int((d + time.Millisecond - 1) / time.Millisecond)
}

// Helper function to split comma-separated list
func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
