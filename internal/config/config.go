package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/terraincognita07/dayglow/internal/db"
	"github.com/terraincognita07/dayglow/internal/llm"
	"github.com/terraincognita07/dayglow/internal/security"
)

const defaultLLMTimeout = 30 * time.Second

var ErrUnsupportedLogLevel = errors.New("unsupported log level")

type Config struct {
	Port         string
	Location     *time.Location
	DBDriver     string
	DBPath       string
	DatabaseURL  string
	AuthSecret   []byte
	AuthIssuer   string
	LLMProvider  string
	GeminiAPIKey string
	OpenAIAPIKey string
	OpenAIURL    string
	LLMModel     string
	LLMTimeout   time.Duration
	LogLevel     string

	// Warnings are non-fatal problems found while loading, for the caller to log.
	Warnings []string
}

// fileConfig mirrors the optional YAML file named by DAYGLOW_CONFIG.
type fileConfig struct {
	Port     string `yaml:"port"`
	Timezone string `yaml:"timezone"`
	Database struct {
		Driver string `yaml:"driver"`
		Path   string `yaml:"path"`
		URL    string `yaml:"url"`
	} `yaml:"database"`
	Auth struct {
		Secret string `yaml:"secret"`
		Issuer string `yaml:"issuer"`
	} `yaml:"auth"`
	LLM struct {
		Provider     string `yaml:"provider"`
		Model        string `yaml:"model"`
		Timeout      string `yaml:"timeout"`
		GeminiAPIKey string `yaml:"gemini_api_key"`
		OpenAIAPIKey string `yaml:"openai_api_key"`
		OpenAIURL    string `yaml:"openai_base_url"`
	} `yaml:"llm"`
	LogLevel string `yaml:"log_level"`
}

// Load reads .env (if present), then the YAML file named by DAYGLOW_CONFIG
// (if set), then environment variables. Later sources win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var file fileConfig
	if path := strings.TrimSpace(os.Getenv("DAYGLOW_CONFIG")); path != "" {
		loaded, err := readFileConfig(path)
		if err != nil {
			return nil, err
		}
		file = loaded
	}
	return resolve(file)
}

func readFileConfig(path string) (fileConfig, error) {
	var file fileConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return file, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return file, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return file, nil
}

func resolve(file fileConfig) (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", firstNonEmpty(file.Port, "8080")),
		DBDriver:     strings.ToLower(getEnv("DB_DRIVER", firstNonEmpty(file.Database.Driver, db.DriverSQLite))),
		DBPath:       getEnv("DB_PATH", firstNonEmpty(file.Database.Path, filepath.Join("data", "dayglow.db"))),
		DatabaseURL:  getEnv("DATABASE_URL", file.Database.URL),
		AuthIssuer:   getEnv("AUTH_ISSUER", file.Auth.Issuer),
		LLMProvider:  strings.ToLower(getEnv("LLM_PROVIDER", firstNonEmpty(file.LLM.Provider, llm.ProviderGemini))),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", file.LLM.GeminiAPIKey),
		OpenAIAPIKey: getEnv("OPENAI_API_KEY", file.LLM.OpenAIAPIKey),
		OpenAIURL:    getEnv("OPENAI_BASE_URL", file.LLM.OpenAIURL),
		LLMModel:     getEnv("LLM_MODEL", file.LLM.Model),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", firstNonEmpty(file.LogLevel, "info"))),
	}

	cfg.Location = cfg.loadLocation(getEnv("TZ", firstNonEmpty(file.Timezone, "UTC")))

	secret := getEnv("AUTH_JWT_SECRET", file.Auth.Secret)
	if err := security.ValidateSigningSecret(secret); err != nil {
		return nil, fmt.Errorf("AUTH_JWT_SECRET: %w", err)
	}
	cfg.AuthSecret = []byte(strings.TrimSpace(secret))

	timeout, err := parseTimeout(getEnv("LLM_TIMEOUT", file.LLM.Timeout))
	if err != nil {
		return nil, err
	}
	cfg.LLMTimeout = timeout

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.DBDriver {
	case db.DriverSQLite:
	case db.DriverPostgres:
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return errors.New("DATABASE_URL is required when DB_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("DB_DRIVER: %w: %q", db.ErrUnsupportedDriver, cfg.DBDriver)
	}

	switch cfg.LLMProvider {
	case llm.ProviderGemini, llm.ProviderOpenAI:
	default:
		return fmt.Errorf("LLM_PROVIDER: %w: %q", llm.ErrUnknownProvider, cfg.LLMProvider)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL: %w: %q", ErrUnsupportedLogLevel, cfg.LogLevel)
	}
	return nil
}

func (cfg *Config) loadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("invalid TZ %q, falling back to UTC", name))
		return time.UTC
	}
	return location
}

func (cfg *Config) Database() db.Config {
	return db.Config{Driver: cfg.DBDriver, Path: cfg.DBPath, DSN: cfg.DatabaseURL}
}

// LLM returns the client settings for the selected provider. The API key may
// be empty; the client reports that on first use.
func (cfg *Config) LLM() llm.Config {
	config := llm.Config{
		Provider: cfg.LLMProvider,
		Model:    cfg.LLMModel,
		Timeout:  cfg.LLMTimeout,
	}
	switch cfg.LLMProvider {
	case llm.ProviderOpenAI:
		config.APIKey = cfg.OpenAIAPIKey
		config.BaseURL = cfg.OpenAIURL
	default:
		config.APIKey = cfg.GeminiAPIKey
	}
	return config
}

func parseTimeout(raw string) (time.Duration, error) {
	if strings.TrimSpace(raw) == "" {
		return defaultLLMTimeout, nil
	}
	timeout, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || timeout <= 0 {
		return 0, fmt.Errorf("LLM_TIMEOUT must be a positive duration, got %q", raw)
	}
	return timeout, nil
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
