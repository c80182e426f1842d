package config

import "time"

type RetryConfig struct {
	Attempts    int   `yaml:"maxAttempts"`
	BaseDelayMs int64 `yaml:"baseDelayMs"`
	MaxDelayMs  int64 `yaml:"maxDelayMs"`
}

func (s *RetryConfig) MaxAttempts() int {
	return s.Attempts
}

func (s *RetryConfig) BaseDelay() time.Duration {
	return time.Duration(s.BaseDelayMs) * time.Millisecond
}

func (s *RetryConfig) MaxDelay() time.Duration {
	return time.Duration(s.MaxDelayMs) * time.Millisecond
}
