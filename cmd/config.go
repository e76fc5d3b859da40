package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr             string
	KafkaBrokers          []string
	KafkaBookingSentTopic string

	Locale         string
	Currency       string
	CurrencySymbol string

	SessionIdleTTL          time.Duration
	SessionEvictionSchedule string
}
