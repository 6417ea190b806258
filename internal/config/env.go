package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// readEnv collects SPACER_* variables from envFile (if it exists) and from
// environ. The process environment wins over the file.
func readEnv(envFile string, environ []string) (map[string]string, error) {
	vars := make(map[string]string)

	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read env file '%s': %w", envFile, err)
		default:
			for k, v := range fileVars {
				if strings.HasPrefix(k, EnvPrefix) {
					vars[k] = v
				}
			}
		}
	}

	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			vars[k] = v
		}
	}
	return vars, nil
}

// applyEnv overrides cfg with the recognised variables in vars.
func (c *Config) applyEnv(vars map[string]string) error {
	bools := map[string]*bool{
		EnvAggressiveSpacing: &c.Spacing.AggressiveSpacing,
		EnvPreserveTabs:      &c.Spacing.PreserveTabs,
		EnvPreserveIndent:    &c.Spacing.PreserveIndent,
	}
	for name, dst := range bools {
		raw, ok := vars[name]
		if !ok {
			continue
		}
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", name, raw, err)
		}
		*dst = v
	}

	ints := map[string]*int{
		EnvMaxOperationSize: &c.Spacing.MaxOperationSize,
		EnvTimeoutMS:        &c.Spacing.TimeoutMS,
	}
	for name, dst := range ints {
		raw, ok := vars[name]
		if !ok {
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("invalid %s=%q: %w", name, raw, err)
		}
		*dst = v
	}

	if v, ok := vars[EnvLogLevel]; ok {
		c.Logger.LogLevel = v
	}
	if v, ok := vars[EnvLogFile]; ok {
		c.Logger.LogFilePath = v
	}
	return nil
}
