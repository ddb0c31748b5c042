package bookkeeper

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ukaji3/bookkeeper-go/pkg/bookkeeper/parser"
)

// Default configuration values.
const (
	defaultEncoding    = "utf-8"
	defaultMaxFileSize = "10MB"
	defaultLogLevel    = "info"
	defaultLogFormat   = "text"
	envPrefix          = "BOOKKEEPER"
)

// LoadConfig loads configuration from file and environment variables.
// An empty configPath searches for bookkeeper.yaml in the working directory and
// $HOME/.config/bookkeeper; a missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("bookkeeper")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("$HOME/.config/bookkeeper")
	}

	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := ValidateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	defaults := DefaultConfig()

	viperCfg.SetDefault("parse.delimiter", defaults.Parse.Delimiter)
	viperCfg.SetDefault("parse.comment", defaults.Parse.Comment)
	viperCfg.SetDefault("parse.encoding", defaults.Parse.Encoding)
	viperCfg.SetDefault("parse.ragged", defaults.Parse.Ragged)
	viperCfg.SetDefault("parse.align", defaults.Parse.Align)
	viperCfg.SetDefault("parse.header", defaults.Parse.Header)
	viperCfg.SetDefault("parse.trim_space", defaults.Parse.TrimSpace)

	viperCfg.SetDefault("xlsx.sheet", defaults.XLSX.Sheet)
	viperCfg.SetDefault("xlsx.print_area", defaults.XLSX.PrintArea)

	viperCfg.SetDefault("import.max_file_size", defaults.Import.MaxFileSize)
	viperCfg.SetDefault("import.verify", defaults.Import.Verify)
	viperCfg.SetDefault("import.separate", defaults.Import.Separate)

	viperCfg.SetDefault("logging.level", defaults.Logging.Level)
	viperCfg.SetDefault("logging.format", defaults.Logging.Format)
}

// ValidateConfig validates the configuration.
func ValidateConfig(config *Config) error {
	switch parser.RaggedPolicy(config.Parse.Ragged) {
	case parser.RaggedReject, parser.RaggedPad:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRagged, config.Parse.Ragged)
	}

	switch parser.AlignMode(config.Parse.Align) {
	case parser.AlignAuto, parser.AlignNone:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidAlign, config.Parse.Align)
	}

	if _, err := config.ParserOptions(""); err != nil {
		return err
	}

	if _, err := config.MaxFileBytes(); err != nil {
		return err
	}

	if _, err := parseLevel(config.Logging.Level); err != nil {
		return err
	}

	switch config.Logging.Format {
	case "json", "text":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, config.Logging.Format)
	}

	return nil
}
