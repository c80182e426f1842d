package config

type KafkaConfig struct {
	BrokerList  []string `yaml:"brokers"`
	PricesTopic string   `yaml:"topic"`
}

func (s *KafkaConfig) Brokers() []string {
	return s.BrokerList
}

func (s *KafkaConfig) Topic() string {
	return s.PricesTopic
}
