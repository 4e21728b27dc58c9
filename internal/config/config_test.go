package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 432, cfg.BCBSeries)
	assert.Equal(t, 120, cfg.MaxTermCount)
	assert.Equal(t, "@every 6h", cfg.RateRefreshSpec)
	assert.Empty(t, cfg.DBConn)
	assert.Empty(t, cfg.SMTPHost)
	assert.False(t, cfg.MailEnabled())
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("BCB_SERIES", "11")
	t.Setenv("MAX_TERM_COUNT", "48")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 11, cfg.BCBSeries)
	assert.Equal(t, 48, cfg.MaxTermCount)
}

func TestNewConfig_MailEnabled(t *testing.T) {
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "587")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.True(t, cfg.MailEnabled())
	assert.Equal(t, "587", cfg.SMTPPort)
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "empty jwt secret", key: "JWT_SECRET", value: ""},
		{name: "non numeric series", key: "BCB_SERIES", value: "selic"},
		{name: "zero max term", key: "MAX_TERM_COUNT", value: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}
