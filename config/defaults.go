// Package config provides centralized default values for the renderer
// service, read from the environment with sane fallbacks.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// getEnvString reads an environment variable with string fallback.
func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

// getEnvInt reads an environment variable with int fallback.
func getEnvInt(key string, defaultValue int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvBool reads an environment variable with bool fallback.
func getEnvBool(key string, defaultValue bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvDuration reads an environment variable as a duration with fallback.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// ListenAddress is the bind address for the HTTP server.
func ListenAddress() string {
	return getEnvString("LISTEN_ADDRESS", ":8080")
}

// PaymentBusinessID is the payment-recipient identifier interpolated
// verbatim into generated commerce forms. Required in production; no
// validation is performed here.
func PaymentBusinessID() string {
	return getEnvString("PAYMENT_BUSINESS_ID", "")
}

// AllowedOrigins lists CORS origins permitted to call the render API.
func AllowedOrigins() []string {
	raw := getEnvString("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4321,http://127.0.0.1:3000")
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

// JWTSecret enables bearer-token auth on the render API when non-empty.
func JWTSecret() string {
	return getEnvString("AUTH_JWT_SECRET", "")
}

// FetchTimeout bounds each outbound spreadsheet fetch. Zero means no
// timeout; an abandoned render discards its result when the request
// context is torn down.
func FetchTimeout() time.Duration {
	return getEnvDuration("FETCH_TIMEOUT", 0)
}

// LogDirectory is where channel log files go when file logging is on.
func LogDirectory() string {
	return getEnvString("LOG_DIRECTORY", "./log")
}

// LogToFile toggles per-channel log files.
func LogToFile() bool {
	return getEnvBool("LOG_TO_FILE", false)
}

// LogJSON toggles JSON log output.
func LogJSON() bool {
	return getEnvBool("LOG_JSON", false)
}

// MaxDocumentBytes caps the accepted render request body.
func MaxDocumentBytes() int {
	return getEnvInt("MAX_DOCUMENT_BYTES", 2<<20)
}
