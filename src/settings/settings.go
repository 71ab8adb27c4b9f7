package settings

import (
	"os"
	"strconv"
)

type Arguments struct {
	// The host name or IP address to listen on
	Host string

	// The port number to listen on
	Port int

	// Connection string for the backing document store
	DatabaseURL string

	// Name of the database within the store
	DatabaseName string

	// Which store backend to bind: "mongo" or "memory"
	StoreBackend string

	// Strongly verbose logging
	Verbose bool

	Debug bool // Enable debug mode
}

// EnvString returns the environment value for key, or fallback when unset.
func EnvString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// EnvInt returns the environment value for key as an int, or fallback
// when unset or not a number.
func EnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
