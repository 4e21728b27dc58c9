package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port                 string
	DBConn               string
	LogLevel             string
	RedisAddr            string
	BCBURL               string
	BCBSeries            int
	RateRefreshSpec      string
	JWTSecret            string
	OperatorEmail        string
	OperatorPasswordHash string
	SMTPHost             string
	SMTPPort             string
	SMTPUsername         string
	SMTPPassword         string
	SenderEmail          string
	MaxTermCount         int
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		DBConn:               getEnv("DB_CONN", ""),
		LogLevel:             getEnv("LOG_LEVEL", "INFO"),
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		BCBURL:               getEnv("BCB_URL", "https://www3.bcb.gov.br/wssgs/services/FachadaWSSGS"),
		RateRefreshSpec:      getEnv("RATE_REFRESH_SPEC", "@every 6h"),
		JWTSecret:            getEnv("JWT_SECRET", "secret"),
		OperatorEmail:        getEnv("OPERATOR_EMAIL", ""),
		OperatorPasswordHash: getEnv("OPERATOR_PASSWORD_HASH", ""),
		SMTPHost:             getEnv("SMTP_HOST", ""),
		SMTPPort:             getEnv("SMTP_PORT", "25"),
		SMTPUsername:         getEnv("SMTP_USERNAME", ""),
		SMTPPassword:         getEnv("SMTP_PASSWORD", ""),
		SenderEmail:          getEnv("SENDER_EMAIL", "simulador@localhost"),
	}

	var err error
	if cfg.BCBSeries, err = getEnvInt("BCB_SERIES", 432); err != nil {
		return nil, err
	}
	if cfg.MaxTermCount, err = getEnvInt("MAX_TERM_COUNT", 120); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.MaxTermCount < 1 {
		return nil, fmt.Errorf("MAX_TERM_COUNT must be positive, got %d", cfg.MaxTermCount)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

// MailEnabled reports whether an SMTP relay is configured for summary e-mails.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != ""
}
