package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"

	"bazar_api/internal/database"
)

// Config is the process configuration, read from the environment and an optional .env file.
type Config struct {
	Port        string
	BasePath    string
	Environment string
	GinMode     string
	SelfPingURL string
	DB          database.Config
}

// Development reports whether the service runs with development logging.
func (c *Config) Development() bool {
	return c.Environment == "development"
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// Load reads configuration. When path is empty a .env file in the working
// directory is used if present; a missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("PORT", "3000")
	v.SetDefault("BASE_PATH", "/api")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("SELF_PING_URL", "")
	v.SetDefault("DB_DRIVER", database.DriverPostgres)
	v.SetDefault("DB_DSN", "")
	v.SetDefault("DB_USER", "")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_SERVER", "localhost:5432")
	v.SetDefault("DB_NAME", "bazar")
	v.SetDefault("DB_ENCRYPT", true)
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 25)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute)

	v.SetConfigType("env")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".env")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// environment wins over the file
	v.AutomaticEnv()

	return &Config{
		Port:        v.GetString("PORT"),
		BasePath:    normalizeBasePath(v.GetString("BASE_PATH")),
		Environment: v.GetString("APP_ENV"),
		GinMode:     v.GetString("GIN_MODE"),
		SelfPingURL: v.GetString("SELF_PING_URL"),
		DB: database.Config{
			Driver:          v.GetString("DB_DRIVER"),
			DSN:             v.GetString("DB_DSN"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Host:            v.GetString("DB_SERVER"),
			Name:            v.GetString("DB_NAME"),
			Encrypt:         v.GetBool("DB_ENCRYPT"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
	}, nil
}

func normalizeBasePath(p string) string {
	p = strings.TrimRight(strings.TrimSpace(p), "/")
	if p != "" && !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}
