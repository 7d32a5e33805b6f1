package utils

import (
	"os"
	"strings"
)

func GetEnvString(key, defaultValue string) string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return strings.TrimSpace(value)
}

func IsProduction() bool {
	return GetEnvString("APP_ENV", "development") == "production"
}
