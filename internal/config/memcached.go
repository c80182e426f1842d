package config

type MemcachedConfig struct {
	NodeHosts []string `yaml:"hosts"`
	Prefix    string   `yaml:"keyPrefix"`
}

func (s *MemcachedConfig) Hosts() []string {
	return s.NodeHosts
}

func (s *MemcachedConfig) KeyPrefix() string {
	return s.Prefix
}
