package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	Timeout         time.Duration `env:"SERVER_TIMEOUT" envDefault:"0s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ThrottleLimit   int           `env:"SERVER_THROTTLE_LIMIT" envDefault:"0"`
}

// UpstreamConfig describes the OpenAI-compatible chat completion service.
// BaseURL and APIKey have no defaults: their absence is reported by the
// upstream client factory on first use, not at load time. An empty Model
// means upstream.DefaultModel.
type UpstreamConfig struct {
	BaseURL     string  `env:"AI_UPSTREAM_BASE_URL"`
	APIKey      string  `env:"AI_UPSTREAM_API_KEY"`
	Model       string  `env:"AI_UPSTREAM_MODEL"`
	Temperature float64 `env:"AI_UPSTREAM_TEMPERATURE" envDefault:"0.4"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
