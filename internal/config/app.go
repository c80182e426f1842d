package config

import "time"

type AppConfig struct {
	APIURLValue      string `yaml:"apiUrl"`
	FetchIntervalMs  int64  `yaml:"fetchInterval"`
	Output           string `yaml:"outputPath"`
	TimeZone         string `yaml:"timezone"`
	Layout           string `yaml:"timeLayout"`
	RequestTimeoutMs int64  `yaml:"requestTimeoutMs"`
}

func (s *AppConfig) APIURL() string {
	return s.APIURLValue
}

func (s *AppConfig) FetchInterval() time.Duration {
	return time.Duration(s.FetchIntervalMs) * time.Millisecond
}

func (s *AppConfig) Timezone() string {
	return s.TimeZone
}

func (s *AppConfig) TimeLayout() string {
	return s.Layout
}

func (s *AppConfig) RequestTimeout() time.Duration {
	return time.Duration(s.RequestTimeoutMs) * time.Millisecond
}
