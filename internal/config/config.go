package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Config holds application configuration.
type Config struct {
	DataDir        string
	UsersFile      string
	ErrorLogFile   string
	AdminHash      []byte
	MinPasswordLen int
	LogLevel       string
}

// NewConfig loads configuration from environment variables. The admin
// password is hashed immediately and the plaintext discarded.
func NewConfig() (*Config, error) {
	cfg := &Config{
		DataDir:        getEnv("DATA_DIR", "."),
		UsersFile:      getEnv("USERS_FILE", "users.txt"),
		ErrorLogFile:   getEnv("ERROR_LOG", "error.log"),
		MinPasswordLen: getEnvInt("MIN_PASSWORD_LEN", 6),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	adminPassword := getEnv("ADMIN_PASSWORD", "admin123")
	if adminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	cfg.AdminHash = hash

	if cfg.MinPasswordLen < 1 {
		return nil, fmt.Errorf("MIN_PASSWORD_LEN must be at least 1")
	}

	return cfg, nil
}

// UsersPath resolves the credential file location under the data dir.
func (c *Config) UsersPath() string {
	return c.resolve(c.UsersFile)
}

// ErrorLogPath resolves the error log location under the data dir.
func (c *Config) ErrorLogPath() string {
	return c.resolve(c.ErrorLogFile)
}

func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return defaultVal
	}
	return i
}
