package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the demo server settings. The ledger engine itself needs no
// configuration; everything here wires the optional sinks and the listener.
type Config struct {
	Addr         string
	KafkaBrokers []string
	KafkaTopic   string
	DatabaseURL  string
}

// Load reads configuration from the environment, after loading a .env file if
// one is present. Empty KafkaBrokers or DatabaseURL disable the respective
// sink.
func Load() Config {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	cfg := Config{
		Addr:        getenv("LEDGER_ADDR", ":8080"),
		KafkaTopic:  getenv("KAFKA_TOPIC", "ledger_transactions"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
