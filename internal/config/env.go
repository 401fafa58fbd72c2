package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Env holds process-level settings read from the environment.
// They provide defaults for command-line flags.
type Env struct {
	FPS         int
	Seed        int64
	ConfigPath  string
	Difficulty  string
	LogLevel    string
	Sound       bool
	SSHAddr     string
	HostKeyPath string
	IdleTimeout time.Duration
}

// LoadEnv reads settings from the environment, loading a .env file from the
// working directory first if one exists. Variables already set win over .env.
func LoadEnv() Env {
	//nolint:errcheck // A missing .env file is the normal case
	godotenv.Load()

	return Env{
		FPS:         getEnvInt("ARCADE_FPS", 60),
		Seed:        getEnvInt64("ARCADE_SEED", 0),
		ConfigPath:  getEnv("ARCADE_CONFIG", ""),
		Difficulty:  getEnv("ARCADE_DIFFICULTY", ""),
		LogLevel:    getEnv("ARCADE_LOG_LEVEL", "info"),
		Sound:       getEnvBool("ARCADE_SOUND", false),
		SSHAddr:     getEnv("ARCADE_SSH_ADDR", ":23234"),
		HostKeyPath: getEnv("ARCADE_HOST_KEY", ""),
		IdleTimeout: getEnvDuration("ARCADE_IDLE_TIMEOUT", 30*time.Minute),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
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

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
