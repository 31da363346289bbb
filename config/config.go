package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Storage StorageConfig
	Mock    MockConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// StorageConfig locates the durable client storage directory that holds the
// persisted session snapshot.
type StorageConfig struct {
	Dir string
}

// MockConfig tunes the simulated service boundary. LatencyScale multiplies
// every artificial delay (0 disables them, useful in tests); SessionTTL is
// how long an issued session token stays valid in the registry.
type MockConfig struct {
	LatencyScale float64
	SessionTTL   time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// .env is optional; environment-only operation is fine.
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("STORAGE_DIR", ".portal-storage")
	viper.SetDefault("MOCK_LATENCY_SCALE", 1.0)

	sessionTTL, err := time.ParseDuration(viper.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Storage: StorageConfig{
			Dir: viper.GetString("STORAGE_DIR"),
		},
		Mock: MockConfig{
			LatencyScale: viper.GetFloat64("MOCK_LATENCY_SCALE"),
			SessionTTL:   sessionTTL,
		},
	}

	return config, nil
}
