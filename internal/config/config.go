// README: Config loader; optional YAML file, then env overrides with defaults for HTTP, AI and logging.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	defaultConfigPath  = "configs/config.yaml"
	defaultGeminiModel = "gemini-2.5-flash"
	defaultOpenAIModel = "gpt-4o-mini"
)

type HTTPConfig struct {
	Addr           string        `yaml:"addr"`
	ReadTimeout    time.Duration `yaml:"readTimeout"`
	WriteTimeout   time.Duration `yaml:"writeTimeout"`
	AllowedOrigins []string      `yaml:"allowedOrigins"`
	MaxUploadMB    int64         `yaml:"maxUploadMb"`
}

// AIConfig selects the model backend and how each call is made.
type AIConfig struct {
	Provider      string        `yaml:"provider"`
	Model         string        `yaml:"model"`
	Temperature   float32       `yaml:"temperature"`
	Timeout       time.Duration `yaml:"timeout"`
	JSONMode      bool          `yaml:"jsonMode"`
	MaxToolRounds int           `yaml:"maxToolRounds"`
	GeminiKey     string        `yaml:"geminiKey"`
	OpenAIKey     string        `yaml:"openaiKey"`
	OpenAIBaseURL string        `yaml:"openaiBaseUrl"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	HTTP HTTPConfig `yaml:"http"`
	AI   AIConfig   `yaml:"ai"`
	Log  LogConfig  `yaml:"log"`
}

// Load builds the runtime configuration. Values come from defaults, then the
// YAML file named by TRAVEL_CONFIG_PATH (or configs/config.yaml when present),
// then environment variables.
func Load() (Config, error) {
	cfg := defaults()

	path := os.Getenv("TRAVEL_CONFIG_PATH")
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}
	if path != "" {
		if err := hydrateFromFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	applyEnv(&cfg)

	if cfg.AI.Model == "" {
		cfg.AI.Model = defaultModel(cfg.AI.Provider)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func defaults() Config {
	var cfg Config
	cfg.HTTP.Addr = ":8000"
	cfg.HTTP.ReadTimeout = 30 * time.Second
	cfg.HTTP.WriteTimeout = 90 * time.Second
	cfg.HTTP.AllowedOrigins = []string{"*"}
	cfg.HTTP.MaxUploadMB = 10
	cfg.AI.Provider = ProviderGemini
	cfg.AI.Temperature = 0.7
	cfg.AI.Timeout = 60 * time.Second
	cfg.AI.JSONMode = true
	cfg.AI.MaxToolRounds = 5
	cfg.Log.Level = "info"
	cfg.Log.Format = "json"
	return cfg
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.HTTP.Addr = envOrDefault("TRAVEL_HTTP_ADDR", cfg.HTTP.Addr)
	cfg.HTTP.ReadTimeout = envOrDefaultDuration("TRAVEL_HTTP_READ_TIMEOUT", cfg.HTTP.ReadTimeout)
	cfg.HTTP.WriteTimeout = envOrDefaultDuration("TRAVEL_HTTP_WRITE_TIMEOUT", cfg.HTTP.WriteTimeout)
	cfg.HTTP.AllowedOrigins = envOrDefaultList("TRAVEL_CORS_ORIGINS", cfg.HTTP.AllowedOrigins)
	cfg.HTTP.MaxUploadMB = int64(envOrDefaultInt("TRAVEL_MAX_UPLOAD_MB", int(cfg.HTTP.MaxUploadMB)))

	cfg.AI.Provider = strings.ToLower(envOrDefault("TRAVEL_AI_PROVIDER", cfg.AI.Provider))
	cfg.AI.Model = envOrDefault("TRAVEL_AI_MODEL", cfg.AI.Model)
	cfg.AI.Temperature = float32(envOrDefaultFloat("TRAVEL_AI_TEMPERATURE", float64(cfg.AI.Temperature)))
	cfg.AI.Timeout = envOrDefaultDuration("TRAVEL_AI_TIMEOUT", cfg.AI.Timeout)
	cfg.AI.JSONMode = envOrDefaultBool("TRAVEL_AI_JSON_MODE", cfg.AI.JSONMode)
	cfg.AI.MaxToolRounds = envOrDefaultInt("TRAVEL_AI_MAX_TOOL_ROUNDS", cfg.AI.MaxToolRounds)
	cfg.AI.GeminiKey = envOrDefault("GOOGLE_GEMINI_API_KEY", envOrDefault("GEMINI_API_KEY", cfg.AI.GeminiKey))
	cfg.AI.OpenAIKey = envOrDefault("OPENAI_API_KEY", cfg.AI.OpenAIKey)
	cfg.AI.OpenAIBaseURL = envOrDefault("OPENAI_BASE_URL", cfg.AI.OpenAIBaseURL)

	cfg.Log.Level = envOrDefault("TRAVEL_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = envOrDefault("TRAVEL_LOG_FORMAT", cfg.Log.Format)
}

// Validate rejects configurations the service cannot start with. The
// credential of the selected provider is the only required value.
func (c Config) Validate() error {
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return errors.New("http addr is required")
	}
	if c.HTTP.MaxUploadMB <= 0 {
		return errors.New("max upload size must be positive")
	}
	if c.AI.Timeout < 0 {
		return errors.New("ai timeout must not be negative")
	}
	if c.AI.MaxToolRounds < 1 {
		return errors.New("ai max tool rounds must be at least 1")
	}
	switch c.AI.Provider {
	case ProviderGemini:
		if c.AI.GeminiKey == "" {
			return errors.New("GOOGLE_GEMINI_API_KEY is required")
		}
	case ProviderOpenAI:
		if c.AI.OpenAIKey == "" {
			return errors.New("OPENAI_API_KEY is required")
		}
	default:
		return fmt.Errorf("unsupported ai provider %q, use %q or %q", c.AI.Provider, ProviderGemini, ProviderOpenAI)
	}
	return nil
}

// APIKey returns the credential of the selected provider.
func (c AIConfig) APIKey() string {
	if c.Provider == ProviderOpenAI {
		return c.OpenAIKey
	}
	return c.GeminiKey
}

func defaultModel(provider string) string {
	if provider == ProviderOpenAI {
		return defaultOpenAIModel
	}
	return defaultGeminiModel
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envOrDefaultDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envOrDefaultList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
