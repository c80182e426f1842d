package config

type MetricsConfig struct {
	ListenAddr string `yaml:"addr"`
}

func (s *MetricsConfig) Addr() string {
	return s.ListenAddr
}

type HealthConfig struct {
	ListenAddr string `yaml:"addr"`
}

func (s *HealthConfig) Addr() string {
	return s.ListenAddr
}

type TracingConfig struct {
	On      bool   `yaml:"enabled"`
	Service string `yaml:"serviceName"`
}

func (s *TracingConfig) Enabled() bool {
	return s.On
}

func (s *TracingConfig) ServiceName() string {
	return s.Service
}
