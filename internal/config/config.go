package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is everything main needs to wire the application.
type Config struct {
	Port          string
	LogLevel      string
	DBPath        string
	SessionSecret string
	SessionTTL    time.Duration
}

const (
	defaultPort       = "8080"
	defaultLogLevel   = "info"
	defaultDBPath     = "notekeeper.db"
	defaultSessionTTL = 24 * time.Hour
)

// Load reads configs/config.yml and the environment. A .env file is honored
// if present. The session signing secret has no default: it must come from
// the SECRET_KEY environment variable or the config file.
func Load() (*Config, error) {
	// Best effort; absent .env is fine.
	_ = godotenv.Load()

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")

	viper.SetDefault("port", defaultPort)
	viper.SetDefault("log.level", defaultLogLevel)
	viper.SetDefault("db.path", defaultDBPath)
	viper.SetDefault("session.ttl", defaultSessionTTL.String())

	// Deploy-time overrides per the original app's environment contract.
	_ = viper.BindEnv("session.secret", "SECRET_KEY")
	_ = viper.BindEnv("db.path", "DATABASE_PATH")

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is tolerated for env-only deployments.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	ttl, err := time.ParseDuration(viper.GetString("session.ttl"))
	if err != nil {
		return nil, errors.New("invalid session.ttl: " + err.Error())
	}

	cfg := &Config{
		Port:          viper.GetString("port"),
		LogLevel:      viper.GetString("log.level"),
		DBPath:        viper.GetString("db.path"),
		SessionSecret: viper.GetString("session.secret"),
		SessionTTL:    ttl,
	}
	if cfg.SessionSecret == "" {
		return nil, errors.New("session signing secret is not set (SECRET_KEY)")
	}
	return cfg, nil
}
