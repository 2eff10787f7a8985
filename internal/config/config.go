package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config is the runtime configuration of the service.
type Config struct {
	ServiceName       string
	AppPort           string
	DatabaseDriver    string
	DatabaseDSN       string
	RabbitMQURL       string
	EventsExchange    string
	UserServiceURL    string
	ProductServiceURL string
	EnrichmentTimeout time.Duration
	LogLevel          string
	LogFormat         string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("SERVICE_NAME", "storefront")
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "file:storefront.db?cache=shared")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("EVENTS_EXCHANGE", "storefront.events")
	v.SetDefault("USER_SERVICE_URL", "")
	v.SetDefault("PRODUCT_SERVICE_URL", "")
	v.SetDefault("ENRICHMENT_TIMEOUT", "3s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

// Load reads the configuration from v, falling back to environment
// variables and then to the defaults.
func Load(v *viper.Viper) Config {
	SetDefaults(v)
	v.AutomaticEnv() // Load environment variables

	return Config{
		ServiceName:       v.GetString("SERVICE_NAME"),
		AppPort:           v.GetString("APP_PORT"),
		DatabaseDriver:    v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:       v.GetString("DATABASE_DSN"),
		RabbitMQURL:       v.GetString("RABBITMQ_URL"),
		EventsExchange:    v.GetString("EVENTS_EXCHANGE"),
		UserServiceURL:    v.GetString("USER_SERVICE_URL"),
		ProductServiceURL: v.GetString("PRODUCT_SERVICE_URL"),
		EnrichmentTimeout: v.GetDuration("ENRICHMENT_TIMEOUT"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		LogFormat:         v.GetString("LOG_FORMAT"),
	}
}

// EnrichmentEnabled reports whether both remote services are configured.
func (c Config) EnrichmentEnabled() bool {
	return c.UserServiceURL != "" && c.ProductServiceURL != ""
}

// EventsEnabled reports whether a broker is configured.
func (c Config) EventsEnabled() bool {
	return c.RabbitMQURL != ""
}
