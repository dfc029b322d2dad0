package config

import (
	// Local Packages
	errors "debt-ledger/errors"
)

var DefaultConfig = []byte(`
application: "debt-ledger"

logger:
  level: "debug"

is_prod_mode: false

mongo:
  uri: "mongodb://localhost:27017"

redis:
  uri: "localhost:6379"
  password: ""

kafka:
  brokers:
    - "localhost:9092"
  topic: "ledger-changes"
  records_per_poll: 1000
  consumer_name: "debt-ledger"

ledger:
  base_currency: "VND"
  default_symbol: "đ"
`)

type Config struct {
	Application string `koanf:"application"`
	Logger      Logger `koanf:"logger"`
	IsProdMode  bool   `koanf:"is_prod_mode"`
	Mongo       Mongo  `koanf:"mongo"`
	Redis       Redis  `koanf:"redis"`
	Kafka       Kafka  `koanf:"kafka"`
	Ledger      Ledger `koanf:"ledger"`
}

type Logger struct {
	Level string `koanf:"level"`
}

type Mongo struct {
	URI string `koanf:"uri"`
}

type Redis struct {
	URI      string `koanf:"uri"`
	Password string `koanf:"password"`
}

type Kafka struct {
	Brokers        []string `koanf:"brokers"`
	Topic          string   `koanf:"topic"`
	RecordsPerPoll int      `koanf:"records_per_poll"`
	ConsumerName   string   `koanf:"consumer_name"`
}

type Ledger struct {
	BaseCurrency  string `koanf:"base_currency"`
	DefaultSymbol string `koanf:"default_symbol"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	ve := errors.ValidationErrs()

	if c.Application == "" {
		ve.Add("application", "cannot be empty")
	}
	if c.Logger.Level == "" {
		ve.Add("logger.level", "cannot be empty")
	}
	if c.Mongo.URI == "" {
		ve.Add("mongo.uri", "cannot be empty")
	}
	if c.Redis.URI == "" {
		ve.Add("redis.uri", "cannot be empty")
	}
	if len(c.Kafka.Brokers) == 0 {
		ve.Add("kafka.brokers", "cannot be empty")
	}
	if c.Kafka.Topic == "" {
		ve.Add("kafka.topic", "cannot be empty")
	}
	if c.Ledger.BaseCurrency == "" {
		ve.Add("ledger.base_currency", "cannot be empty")
	}
	if c.Ledger.DefaultSymbol == "" {
		ve.Add("ledger.default_symbol", "cannot be empty")
	}

	return ve.Err()
}
