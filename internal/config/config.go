package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration for the SDK and bundled tools.
type Config struct {
	Environment string           `yaml:"environment"`
	UseMockData bool             `yaml:"useMockData"`
	StateDir    string           `yaml:"stateDir"`
	Secrets     SecretsConfig    `yaml:"secrets"`
	MockServer  MockServerConfig `yaml:"mockServer"`
}

// SecretsConfig locates the encrypted credential storage.
type SecretsConfig struct {
	Path       string `yaml:"path"`
	Passphrase string `yaml:"passphrase"`
}

// MockServerConfig controls the local fixture API server.
type MockServerConfig struct {
	Address         string        `yaml:"address"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	TokenSecret     string        `yaml:"tokenSecret"`
	AccessTokenTTL  time.Duration `yaml:"accessTokenTtl"`
	RefreshTokenTTL time.Duration `yaml:"refreshTokenTtl"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func defaultConfig() *Config {
	stateDir := defaultStateDir()
	return &Config{
		StateDir: stateDir,
		Secrets: SecretsConfig{
			Path: filepath.Join(stateDir, "credentials.enc"),
		},
		MockServer: MockServerConfig{
			Address:         ":3000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			TokenSecret:     "rigger-mock-secret",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 720 * time.Hour,
		},
	}
}

func defaultStateDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "rigger")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".rigger"
	}
	return filepath.Join(home, ".config", "rigger")
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("API_ENVIRONMENT"); v != "" {
		cfg.Environment = v
	}
	if v := os.Getenv("RIGGER_USE_MOCK_DATA"); v != "" {
		cfg.UseMockData = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("RIGGER_STATE_DIR"); v != "" {
		cfg.StateDir = v
		cfg.Secrets.Path = filepath.Join(v, "credentials.enc")
	}
	if v := os.Getenv("RIGGER_SECRETS_PATH"); v != "" {
		cfg.Secrets.Path = v
	}
	if v := os.Getenv("RIGGER_SECRETS_PASSPHRASE"); v != "" {
		cfg.Secrets.Passphrase = v
	}
	if v := os.Getenv("MOCKSERVER_ADDRESS"); v != "" {
		cfg.MockServer.Address = v
	}
	if v := os.Getenv("MOCKSERVER_TOKEN_SECRET"); v != "" {
		cfg.MockServer.TokenSecret = v
	}
}

// Validate rejects settings the SDK cannot operate with.
func (c *Config) Validate() error {
	if c.Environment != "" {
		if _, ok := ParseEnvironment(c.Environment); !ok {
			return fmt.Errorf("unknown environment %q", c.Environment)
		}
	}
	if strings.TrimSpace(c.StateDir) == "" {
		return fmt.Errorf("stateDir must not be empty")
	}
	if strings.TrimSpace(c.Secrets.Path) == "" {
		return fmt.Errorf("secrets.path must not be empty")
	}
	if c.MockServer.AccessTokenTTL <= 0 || c.MockServer.RefreshTokenTTL <= 0 {
		return fmt.Errorf("mock server token TTLs must be positive")
	}
	return nil
}
