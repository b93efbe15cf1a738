package config

import "os"

type Config struct {
	Port        string
	Env         string
	PostgresURL string
	JWTSecret   string
	UploadDir   string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		PostgresURL: getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:   JWTSecret(),
		UploadDir:   getEnv("UPLOAD_DIR", "./uploads"),
	}
}

// JWTSecret returns the token signing secret. Issuance and
// verification must agree on it.
func JWTSecret() string {
	return getEnv("JWT_SECRET", "supersecretjwtkey")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
