package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// DefaultSecret is the development-only signing secret. Running with it
// unmodified triggers a startup warning.
const DefaultSecret = "dev-secret-please-change"

// Config holds all runtime configuration. It is loaded once in main and
// passed explicitly to the constructors that need it.
type Config struct {
	AppPort         string
	DatabaseURL     string
	SecretKey       string
	Algorithm       string
	TokenTTLMinutes int
	StripeSecretKey string
	PublicBaseURL   string
	CORSOrigins     string
	RabbitMQURL     string
}

// Load reads configuration from environment variables with development
// defaults, mirroring the env keys the service has always used.
func Load() Config {
	viper.SetDefault("APP_PORT", ":8000")
	viper.SetDefault("DATABASE_URL", "storefront.db")
	viper.SetDefault("SECRET_KEY", DefaultSecret)
	viper.SetDefault("ALGORITHM", "HS256")
	viper.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	viper.SetDefault("STRIPE_SECRET_KEY", "")
	viper.SetDefault("PUBLIC_BASE_URL", "http://127.0.0.1:8000")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv()

	cfg := Config{
		AppPort:         viper.GetString("APP_PORT"),
		DatabaseURL:     viper.GetString("DATABASE_URL"),
		SecretKey:       viper.GetString("SECRET_KEY"),
		Algorithm:       viper.GetString("ALGORITHM"),
		TokenTTLMinutes: viper.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES"),
		StripeSecretKey: viper.GetString("STRIPE_SECRET_KEY"),
		PublicBaseURL:   strings.TrimRight(viper.GetString("PUBLIC_BASE_URL"), "/"),
		CORSOrigins:     viper.GetString("CORS_ORIGINS"),
		RabbitMQURL:     viper.GetString("RABBITMQ_URL"),
	}

	if cfg.TokenTTLMinutes <= 0 {
		cfg.TokenTTLMinutes = 30
	}
	if cfg.SecretKey == DefaultSecret {
		log.Println("WARNING: using default SECRET_KEY. Set a secure SECRET_KEY in the environment for production.")
	}

	return cfg
}
