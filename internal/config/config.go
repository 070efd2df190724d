package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
)

// Version is echoed in the health response and declared by the API docs.
const Version = "1.0.0"

type Config struct {
	AppName string
	AppEnv  string
	Port    string

	DBDriver    string
	DatabaseURL string

	DBHost string
	DBPort string
	DBName string
	DBUser string
	DBPass string

	RedisAddr string
	RedisDB   int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppName: getenv("APP_NAME", "backend-scaffold"),
		AppEnv:  getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "3000"),

		DBDriver:    getenv("DB_DRIVER", "postgres"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		DBHost: getenv("DB_HOST", "localhost"),
		DBPort: getenv("DB_PORT", "5432"),
		DBName: getenv("DB_NAME", "postgres"),
		DBUser: getenv("DB_USER", "postgres"),
		DBPass: os.Getenv("DB_PASS"),

		RedisAddr: getenv("REDIS_ADDR", "localhost:6379"),
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.RedisDB = n
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("missing PORT")
	}
	// ensure port is valid
	if _, err := net.LookupPort("tcp", c.Port); err != nil {
		return fmt.Errorf("invalid PORT %q: %w", c.Port, err)
	}
	switch c.DBDriver {
	case "postgres", "mysql", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want postgres, mysql or sqlite)", c.DBDriver)
	}
	if c.DatabaseURL == "" && c.DBDriver != "sqlite" {
		if c.DBHost == "" || c.DBPort == "" || c.DBName == "" || c.DBUser == "" {
			return errors.New("missing database config (DATABASE_URL or DB_HOST/PORT/NAME/USER)")
		}
	}
	return nil
}

func (c *Config) dbAddr() string { return net.JoinHostPort(c.DBHost, c.DBPort) }

// DSN returns the connection string for the configured driver. DATABASE_URL
// wins when set (Supabase hands out a full URL).
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	switch c.DBDriver {
	case "mysql":
		// parseTime needed for DATETIME
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4,utf8",
			c.DBUser, c.DBPass, c.dbAddr(), c.DBName)
	case "sqlite":
		return c.DBName
	default:
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=require",
			c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName)
	}
}
