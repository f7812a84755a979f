package config

import (
	"os"
	"strings"
)

const baseVersion = "0.1.0"

// GetVersion returns version from environment variable or the compiled-in base version
func GetVersion() string {
	// APP_VERSION is set by CI/CD; local builds fall back to the base version
	if envVersion := strings.TrimSpace(os.Getenv("APP_VERSION")); envVersion != "" {
		return envVersion
	}
	return baseVersion
}
