package utils

import "os"

// GetEnv returns the environment variable or the fallback when unset
func GetEnv(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
