package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const configFile = "data/config.yaml"

type config struct {
	App       AppConfig       `yaml:",inline"`
	Storage   StorageConfig   `yaml:"storage"`
	Retry     RetryConfig     `yaml:"retry"`
	Metrics   MetricsConfig   `yaml:"metrics"`
	Health    HealthConfig    `yaml:"health"`
	Tracing   TracingConfig   `yaml:"tracing"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Redis     RedisConfig     `yaml:"redis"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

func defaultConfig() config {
	return config{
		App: AppConfig{
			FetchIntervalMs:  60000,
			Output:           "data/prices.json",
			TimeZone:         "Asia/Kolkata",
			Layout:           "2/1/2006, 15:04:05",
			RequestTimeoutMs: 10000,
		},
		Storage: StorageConfig{LogFormat: FormatJSON},
		Retry: RetryConfig{
			Attempts:    3,
			BaseDelayMs: 1000,
			MaxDelayMs:  60000,
		},
		Tracing:   TracingConfig{Service: "btc-tracker"},
		Kafka:     KafkaConfig{PricesTopic: "btc-prices"},
		Memcached: MemcachedConfig{Prefix: "btc"},
		Redis:     RedisConfig{Prefix: "btc"},
	}
}

type Service struct {
	config  config
	baseDir string
}

// New locates data/config.yaml next to the executable, falling back to the
// working directory, then loads and validates it.
func New() (*Service, error) {
	baseDir := locateBaseDir()

	s, err := Load(filepath.Join(baseDir, configFile))
	if err != nil {
		return nil, err
	}
	s.baseDir = baseDir

	if err = s.Validate(); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return s, nil
}

// Load reads the config at path. A missing file yields the defaults.
func Load(path string) (*Service, error) {
	s := &Service{
		config:  defaultConfig(),
		baseDir: filepath.Dir(path),
	}

	rawYAML, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	return s, nil
}

func locateBaseDir() string {
	exe, err := os.Executable()
	if err == nil {
		dir := filepath.Dir(exe)
		if _, err = os.Stat(filepath.Join(dir, configFile)); err == nil {
			return dir
		}
	}
	return "."
}

func (s *Service) Validate() error {
	app := s.config.App
	if app.APIURLValue == "" {
		return errors.New("apiUrl is required")
	}
	u, err := url.Parse(app.APIURLValue)
	if err != nil {
		return errors.Wrap(err, "apiUrl")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.Errorf("apiUrl %q is not an http(s) url", app.APIURLValue)
	}
	if app.FetchIntervalMs <= 0 {
		return errors.Errorf("fetchInterval must be positive, got %d", app.FetchIntervalMs)
	}
	if app.Output == "" {
		return errors.New("outputPath is required")
	}
	if app.RequestTimeoutMs <= 0 {
		return errors.Errorf("requestTimeoutMs must be positive, got %d", app.RequestTimeoutMs)
	}
	if _, err = time.LoadLocation(app.TimeZone); err != nil {
		return errors.Wrapf(err, "timezone %q", app.TimeZone)
	}
	if strings.TrimSpace(app.Layout) == "" {
		return errors.New("timeLayout is required")
	}

	switch s.config.Storage.LogFormat {
	case FormatJSON, FormatJSONLines:
	default:
		return errors.Errorf("unknown storage format %q", s.config.Storage.LogFormat)
	}

	r := s.config.Retry
	if r.Attempts < 1 {
		return errors.Errorf("retry.maxAttempts must be at least 1, got %d", r.Attempts)
	}
	if r.BaseDelayMs < 0 || r.MaxDelayMs < r.BaseDelayMs {
		return errors.Errorf("retry delays are inconsistent: base %d, max %d", r.BaseDelayMs, r.MaxDelayMs)
	}
	return nil
}

// ResolvePath makes a relative path relative to the program's base directory.
func (s *Service) ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.baseDir, path)
}

func (s *Service) OutputFile() string {
	return s.ResolvePath(s.config.App.Output)
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Retry() *RetryConfig {
	return &s.config.Retry
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}

func (s *Service) Health() *HealthConfig {
	return &s.config.Health
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}

func (s *Service) Postgres() *PostgresConfig {
	return &s.config.Postgres
}

func (s *Service) Kafka() *KafkaConfig {
	return &s.config.Kafka
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Redis() *RedisConfig {
	return &s.config.Redis
}

func (s *Service) Telegram() *TelegramConfig {
	return &s.config.Telegram
}
