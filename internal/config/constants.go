package config

// Base application details
const AppName = "spacer"
const ConfigDirName = "spacer"
const DefaultConfigFileName = "config.toml"     // Main config file
const DefaultYAMLConfigFileName = "config.yaml" // Tried when no TOML file exists
const DefaultEnvFileName = ".env"

// Environment variables read by LoadConfig, after the .env file.
const EnvPrefix = "SPACER_"
const (
	EnvAggressiveSpacing = EnvPrefix + "AGGRESSIVE_SPACING"
	EnvPreserveTabs      = EnvPrefix + "PRESERVE_TABS"
	EnvPreserveIndent    = EnvPrefix + "PRESERVE_INDENT"
	EnvMaxOperationSize  = EnvPrefix + "MAX_OPERATION_SIZE"
	EnvTimeoutMS         = EnvPrefix + "TIMEOUT_MS"
	EnvLogLevel          = EnvPrefix + "LOG_LEVEL"
	EnvLogFile           = EnvPrefix + "LOG_FILE"
)

const DefaultLogLevel = "info"
