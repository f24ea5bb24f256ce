// README: Config loader; environment variables (optionally seeded from .env) with inline defaults.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderClaude = "claude"
)

type HTTPConfig struct {
	Addr        string   `env:"GREENROUTE_HTTP_ADDR" envDefault:":8080"`
	CORSOrigins []string `env:"GREENROUTE_CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

type MapsConfig struct {
	APIKey   string        `env:"GOOGLE_MAPS_API_KEY,required"`
	Timeout  time.Duration `env:"GREENROUTE_MAPS_TIMEOUT" envDefault:"10s"`
	Language string        `env:"GREENROUTE_MAPS_LANGUAGE"`
	Region   string        `env:"GREENROUTE_MAPS_REGION"`
}

type AIConfig struct {
	Provider string `env:"GREENROUTE_AI_PROVIDER" envDefault:"gemini"`
	Model    string `env:"GREENROUTE_AI_MODEL"`
	// Timeout bounds each model call; a hung model would otherwise block the request.
	Timeout      time.Duration `env:"GREENROUTE_AI_TIMEOUT" envDefault:"30s"`
	GeminiKey    string        `env:"GEMINI_API_KEY"`
	OpenAIKey    string        `env:"OPENAI_API_KEY"`
	AnthropicKey string        `env:"ANTHROPIC_API_KEY"`
}

type EvalConfig struct {
	Concurrency int `env:"GREENROUTE_EVAL_CONCURRENCY" envDefault:"1"`
}

type RedisConfig struct {
	Addr     string        `env:"GREENROUTE_REDIS_ADDR"`
	CacheTTL time.Duration `env:"GREENROUTE_CACHE_TTL" envDefault:"24h"`
}

type Config struct {
	Env   string `env:"GREENROUTE_ENV" envDefault:"production"`
	HTTP  HTTPConfig
	Maps  MapsConfig
	AI    AIConfig
	Eval  EvalConfig
	Redis RedisConfig
}

// Development reports whether human-readable logging should be used.
func (c Config) Development() bool {
	return c.Env == "development"
}

// Load reads the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the given variables instead of the process environment.
func LoadFrom(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var key, name string
	switch c.AI.Provider {
	case ProviderGemini:
		key, name = c.AI.GeminiKey, "GEMINI_API_KEY"
	case ProviderOpenAI:
		key, name = c.AI.OpenAIKey, "OPENAI_API_KEY"
	case ProviderClaude:
		key, name = c.AI.AnthropicKey, "ANTHROPIC_API_KEY"
	default:
		return fmt.Errorf("config: unsupported GREENROUTE_AI_PROVIDER %q", c.AI.Provider)
	}
	if key == "" {
		return fmt.Errorf("config: environment variable %s is required for provider %s", name, c.AI.Provider)
	}
	if c.Eval.Concurrency < 1 {
		return fmt.Errorf("config: GREENROUTE_EVAL_CONCURRENCY must be >= 1, got %d", c.Eval.Concurrency)
	}
	return nil
}
