package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port               string `envconfig:"PORT" default:"8080"`
	MongoURI           string `envconfig:"MONGO_URI" required:"true"`
	DBName             string `envconfig:"DB_NAME" required:"true"`
	JWTSecret          string `envconfig:"JWT_SECRET" required:"true"`
	MidtransServerKey  string `envconfig:"MIDTRANS_SERVER_KEY"`
	MidtransClientKey  string `envconfig:"MIDTRANS_CLIENT_KEY"`
	MidtransProduction bool   `envconfig:"MIDTRANS_IS_PRODUCTION" default:"false"`
	CheckoutFinishURL  string `envconfig:"CHECKOUT_FINISH_URL" default:"https://cartlink.id/checkout-success"`
	OrderJournalPath   string `envconfig:"ORDER_JOURNAL_PATH" default:"orders.fallback.jsonl"`
	LogLevel           string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadEnv reads .env if present. Real deployments set variables directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
