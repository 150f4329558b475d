package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/Veraticus/chart-mapper/internal/common"
	"github.com/Veraticus/chart-mapper/internal/learning"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the application reads.
const EnvPrefix = "CHARTMAP"

// Config holds the typed application configuration.
type Config struct {
	Database DatabaseConfig
	Rules    RulesConfig
	Logging  LoggingConfig
	Server   ServerConfig
	Learning LearningConfig
}

// DatabaseConfig locates the accepted-mapping store.
type DatabaseConfig struct {
	Path string
}

// RulesConfig points at an optional rule file that replaces the built-in tables.
type RulesConfig struct {
	Path string
}

// LoggingConfig configures slog.
type LoggingConfig struct {
	Level  string
	Format string
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// LearningConfig tunes the history-based strategies.
type LearningConfig struct {
	SimilarityThreshold int
}

// SetDefaults registers default values and the environment binding on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "$HOME/.local/share/chartmap/chartmap.db")
	v.SetDefault("rules.path", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("learning.similarity_threshold", learning.DefaultSimilarityThreshold)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// LoadEnvFile loads variables from a .env file. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load builds a validated Config from v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{Path: ExpandPath(v.GetString("database.path"))},
		Rules:    RulesConfig{Path: ExpandPath(v.GetString("rules.path"))},
		Server: ServerConfig{
			Addr:         v.GetString("server.addr"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		Learning: LearningConfig{SimilarityThreshold: v.GetInt("learning.similarity_threshold")},
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the application cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("%w: database.path", common.ErrMissingConfig)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("%w: server.addr", common.ErrMissingConfig)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("%w: server timeouts must be positive", common.ErrInvalidConfig)
	}
	if t := c.Learning.SimilarityThreshold; t < 1 || t > 100 {
		return fmt.Errorf("%w: learning.similarity_threshold %d is outside 1-100", common.ErrInvalidConfig, t)
	}
	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "console", "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", common.ErrInvalidConfig, c.Logging.Format)
	}
	if c.Rules.Path != "" {
		if _, err := os.Stat(c.Rules.Path); err != nil {
			return fmt.Errorf("%w: rules.path: %w", common.ErrInvalidConfig, err)
		}
	}
	return nil
}
