package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables recognized by the service.
const (
	KeyDatabaseURL       = "DATABASE_URL"
	KeyPort              = "PORT"
	KeyAcceptedOrigins   = "ACCEPTED_ORIGINS"
	KeyTelegramBotToken  = "TELEGRAM_BOT_TOKEN"
	KeyTelegramChatID    = "TELEGRAM_CHAT_ID"
	KeyTelegramAPIBase   = "TELEGRAM_API_BASE"
	KeySessionSigningKey = "SESSION_SIGNING_KEY"
	KeySessionTTLHours   = "SESSION_TTL_HOURS"
	KeyS3Bucket          = "S3_BUCKET"
	KeyS3Region          = "S3_REGION"
	KeyS3PublicBaseURL   = "S3_PUBLIC_BASE_URL"
	KeyReadTimeoutSecs   = "READ_TIMEOUT_SECONDS"
	KeyWriteTimeoutSecs  = "WRITE_TIMEOUT_SECONDS"
	KeyIdleTimeoutSecs   = "IDLE_TIMEOUT_SECONDS"
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

// RequireString returns the value for key or an error when it is unset or
// empty. Used for options whose absence is fatal at startup.
func RequireString(config map[string]string, key string) (string, error) {
	val := GetString(config, key, "")
	if val == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return val, nil
}
