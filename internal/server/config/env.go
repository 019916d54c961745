package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables, loading a
// local .env file first when one exists. A missing .env file is not an
// error; explicit environment variables always win over the file.
//
// Recognized variables:
//
//	ADDRESS                  HTTP bind address (e.g. ":3000")
//	DATABASE_URL             PostgreSQL DSN
//	DATABASE_SKIP_TLS_VERIFY "true"/"1" to disable DB TLS verification
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("DATABASE_SKIP_TLS_VERIFY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.DatabaseSkipTLSVerify = b
		}
	}
}
