package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/menuboard/localemerge/internal/cmd/output"
	"github.com/menuboard/localemerge/pkg/constants"
	"github.com/menuboard/localemerge/pkg/errors"
	"github.com/menuboard/localemerge/pkg/report"
	"github.com/menuboard/localemerge/pkg/save"
)

// EnvPrefix prefixes every environment variable read by the CLI.
const EnvPrefix = "LOCALEMERGE"

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose      bool
	Quiet        bool
	NoColor      bool
	OutputFormat string

	// Config file
	ConfigFile string

	// Merge configuration
	Base         string
	Incoming     string
	Output       string
	Report       string
	Format       string
	ReportFormat string
	DryRun       bool
	TargetScript string

	// Lookup configuration
	FallbackLocale string

	// Logging configuration
	LogLevel        string // --log-level flag only
	DefaultLogLevel string // log_level setting or LOG_LEVEL
	LogFormat       string
	LogOutput       string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. LOCALEMERGE_* environment variables
// 3. .env files
// 4. Config file (.localemerge.yaml in $HOME or the working directory)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file. An empty path
// searches the standard locations.
func LoadConfigFile(path string) (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path == "" {
		path = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.DefaultConfigFile)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.NewConfigError("config", err.Error(), err)
		}
	}

	return &Config{
		OutputFormat: v.GetString("output_format"),
		ConfigFile:   v.ConfigFileUsed(),

		Base:         v.GetString("base"),
		Incoming:     v.GetString("incoming"),
		Output:       v.GetString("output"),
		Report:       v.GetString("report"),
		Format:       v.GetString("format"),
		ReportFormat: v.GetString("report_format"),
		DryRun:       v.GetBool("dry_run"),
		TargetScript: v.GetString("target_script"),

		FallbackLocale: v.GetString("fallback_locale"),

		DefaultLogLevel: v.GetString("log_level"),
		LogFormat:       v.GetString("log_format"),
		LogOutput:       v.GetString("log_output"),
	}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base", constants.DefaultBasePath)
	v.SetDefault("incoming", constants.DefaultIncomingPath)
	v.SetDefault("output", constants.DefaultOutputPath)
	v.SetDefault("report", constants.DefaultReportPath)
	v.SetDefault("format", save.FormatJSON.String())
	v.SetDefault("report_format", report.FormatMarkdown.String())
	v.SetDefault("dry_run", false)
	v.SetDefault("target_script", "arabic")
	v.SetDefault("fallback_locale", constants.DefaultLocale)
	v.SetDefault("log_level", getEnvOrDefault("LOG_LEVEL", ""))
	v.SetDefault("log_format", getEnvOrDefault("LOG_FORMAT", "auto"))
	v.SetDefault("log_output", getEnvOrDefault("LOG_OUTPUT", "stderr"))
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.OutputFormat = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// Validate checks the format and script settings.
func (c *Config) Validate() error {
	if _, err := output.ParseFormat(c.OutputFormat); err != nil {
		return errors.NewConfigError("output_format", err.Error(), err)
	}
	if _, err := save.ParseFormat(c.Format); err != nil {
		return errors.NewConfigError("format", err.Error(), err)
	}
	if _, err := report.ParseFormat(c.ReportFormat); err != nil {
		return errors.NewConfigError("report_format", err.Error(), err)
	}
	if _, err := scriptDetector(c.TargetScript); err != nil {
		return err
	}
	return nil
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are never overwritten, so
// .env.local only fills what .env left unset.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
