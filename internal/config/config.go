package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Moora/internal/scoring"
)

type Config struct {
	Server   ServerConfig     `yaml:"server"`
	Events   EventsConfig     `yaml:"events"`
	Scoring  ScoringConfig    `yaml:"scoring"`
	Criteria scoring.Criteria `yaml:"criteria" validate:"required,min=1,dive"`
	Logging  LoggingConfig    `yaml:"logging"`
}

type ServerConfig struct {
	Port              int   `yaml:"port" validate:"min=1,max=65535"`
	MetricsPort       int   `yaml:"metrics_port" validate:"min=1,max=65535,nefield=Port"`
	RequestsPerMinute int   `yaml:"requests_per_minute" validate:"min=0"`
	MaxBodyBytes      int64 `yaml:"max_body_bytes" validate:"min=0"`
}

// EventsConfig points at the NATS server. An empty URL disables events.
type EventsConfig struct {
	URL string `yaml:"url" validate:"omitempty,url"`
}

type ScoringConfig struct {
	WeightTolerance float64 `yaml:"weight_tolerance" validate:"gt=0,lt=1"`
	FrontierEnabled bool    `yaml:"frontier_enabled"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

var validate = validator.New()

func Load(path string) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:              8700,
			MetricsPort:       8701,
			RequestsPerMinute: 120,
			MaxBodyBytes:      1 << 20,
		},
		Events: EventsConfig{
			URL: "nats://localhost:4222",
		},
		Scoring: ScoringConfig{
			WeightTolerance: scoring.DefaultWeightTolerance,
			FrontierEnabled: false,
		},
		Criteria: scoring.DefaultCriteria(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and then the criteria set itself, so a
// misconfigured weight table fails at load time rather than on the first run.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if err := cfg.Criteria.Validate(cfg.Scoring.WeightTolerance); err != nil {
		return fmt.Errorf("config criteria: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("MOORA_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("MOORA_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("MOORA_REQUESTS_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.RequestsPerMinute = n
		}
	}
	if v, ok := os.LookupEnv("MOORA_NATS_URL"); ok {
		cfg.Events.URL = v
	}
	if v := os.Getenv("MOORA_WEIGHT_TOLERANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scoring.WeightTolerance = f
		}
	}
	if v := os.Getenv("MOORA_FRONTIER_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Scoring.FrontierEnabled = b
		}
	}
	if v := os.Getenv("MOORA_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("MOORA_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
