package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config agrupa lo configurable por entorno. Defaults pensados para dev local.
type Config struct {
	Port int

	// DBDSN vacío => adapters in-memory (modo dev / tests).
	DBDSN string

	LogLevel string
}

// Load lee la configuración desde variables de entorno:
// - PORT (default 8080)
// - DB_DSN (opcional)
// - LOG_LEVEL (debug|info|warn|error, default info)
func Load() (Config, error) {
	port, err := intEnv("PORT", 8080)
	if err != nil {
		return Config{}, err
	}

	level := strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))
	if level == "" {
		level = "info"
	}

	return Config{
		Port:     port,
		DBDSN:    strings.TrimSpace(os.Getenv("DB_DSN")),
		LogLevel: level,
	}, nil
}

func intEnv(name string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return n, nil
}
