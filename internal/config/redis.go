package config

import "time"

type RedisConfig struct {
	Address    string `yaml:"addr"`
	Pswd       string `yaml:"password"`
	Database   int    `yaml:"db"`
	Prefix     string `yaml:"keyPrefix"`
	TTLSeconds int64  `yaml:"ttlSeconds"`
}

func (s *RedisConfig) Addr() string {
	return s.Address
}

func (s *RedisConfig) Password() string {
	return s.Pswd
}

func (s *RedisConfig) DB() int {
	return s.Database
}

func (s *RedisConfig) KeyPrefix() string {
	return s.Prefix
}

func (s *RedisConfig) TTL() time.Duration {
	return time.Duration(s.TTLSeconds) * time.Second
}
