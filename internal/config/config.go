package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is everything the helper needs for one run. Values come from the
// environment (optionally a .env file); CLI flags override them.
type Config struct {
	Email      string
	Password   string
	EmployeeID int64

	// NotifyURL is the notification destination:
	// slack://<bot-token>@<channel-id> or an Apprise API endpoint URL.
	NotifyURL string

	DatabasePath string

	AutoTake bool
	// Frequency is the polling interval; zero means a single pass.
	Frequency time.Duration
	Debug     bool
}

func Load() *Config {
	return &Config{
		Email:        getEnv("HUNGRY_EMAIL", ""),
		Password:     getEnv("HUNGRY_PASSWORD", ""),
		EmployeeID:   getEnvInt64("HUNGRY_EMPLOYEE_ID", 0),
		NotifyURL:    getEnv("HUNGRY_NOTIFY_URL", ""),
		DatabasePath: getEnv("DATABASE_PATH", "./hungry.db"),
		AutoTake:     getEnvBool("HUNGRY_AUTO_TAKE", false),
		Frequency:    time.Duration(getEnvInt64("HUNGRY_FREQUENCY_SECONDS", 0)) * time.Second,
		Debug:        getEnvBool("HUNGRY_DEBUG", false),
	}
}

// Validate checks everything the first cycle depends on. A failure here is
// fatal at startup.
func (c *Config) Validate() error {
	if c.Email == "" {
		return fmt.Errorf("email is required (HUNGRY_EMAIL)")
	}
	if c.Password == "" {
		return fmt.Errorf("password is required (HUNGRY_PASSWORD)")
	}
	if c.EmployeeID <= 0 {
		return fmt.Errorf("employee id is required (HUNGRY_EMPLOYEE_ID, see app -> my profile)")
	}
	if c.NotifyURL == "" {
		return fmt.Errorf("notification URL is required (HUNGRY_NOTIFY_URL)")
	}
	if c.Frequency < 0 {
		return fmt.Errorf("polling frequency cannot be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
