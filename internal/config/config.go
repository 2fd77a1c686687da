package config

import "github.com/spf13/viper"

// Config holds the runtime settings of the storefront server.
type Config struct {
	AppPort       string
	StoreBackend  string // memory, sqlite or postgres
	DatabaseDSN   string
	RabbitMQURL   string // empty disables order events
	JWTSecret     string
	DefaultUserID string // identity used when no bearer token is sent
	SeedDemoData  bool
}

// Load reads the configuration from environment variables with
// development-friendly defaults. The memory backend with seeded demo
// data is the stand-in for a real database when developing locally.
func Load() *Config {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("STORE_BACKEND", "memory")
	v.SetDefault("DATABASE_DSN", "file::memory:?cache=shared")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("JWT_SECRET", "storefront_dev_secret")
	v.SetDefault("DEFAULT_USER_ID", "current-user")
	v.SetDefault("SEED_DEMO_DATA", true)
	v.AutomaticEnv()

	return &Config{
		AppPort:       v.GetString("APP_PORT"),
		StoreBackend:  v.GetString("STORE_BACKEND"),
		DatabaseDSN:   v.GetString("DATABASE_DSN"),
		RabbitMQURL:   v.GetString("RABBITMQ_URL"),
		JWTSecret:     v.GetString("JWT_SECRET"),
		DefaultUserID: v.GetString("DEFAULT_USER_ID"),
		SeedDemoData:  v.GetBool("SEED_DEMO_DATA"),
	}
}
