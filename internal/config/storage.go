package config

const (
	FormatJSON      = "json"
	FormatJSONLines = "jsonl"
)

type StorageConfig struct {
	LogFormat string `yaml:"format"`
}

func (s *StorageConfig) Format() string {
	return s.LogFormat
}
