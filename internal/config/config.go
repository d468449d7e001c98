package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	Port         string
	Env          string
	StoreBackend string
	DBSource     string
}

func Load() (*Config, error) {
	// Best effort: a missing .env just means plain environment variables.
	_ = godotenv.Load()

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	backend := os.Getenv("STORE_BACKEND")
	if backend == "" {
		backend = BackendMemory
	}
	if backend != BackendMemory && backend != BackendPostgres {
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}

	dbSource := os.Getenv("DB_SOURCE")
	if backend == BackendPostgres && dbSource == "" {
		return nil, fmt.Errorf("DB_SOURCE environment variable is required when STORE_BACKEND=postgres")
	}

	return &Config{
		Port:         port,
		Env:          env,
		StoreBackend: backend,
		DBSource:     dbSource,
	}, nil
}
