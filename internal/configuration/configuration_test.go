package configuration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 8080, cfg.RestConfig.Port)
	assert.Equal(t, []string{"*"}, cfg.RestConfig.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.RestConfig.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogConfig.Level)
	assert.Equal(t, "none", cfg.AuthConfig.Mode)
	assert.Equal(t, 30*time.Second, cfg.AuthConfig.JWTLeeway)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_REST_HOST", "127.0.0.1")
	t.Setenv("APP_REST_PORT", "9090")
	t.Setenv("APP_REST_TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2,")
	t.Setenv("APP_REST_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("APP_AUTH_MODE", "TOKEN")
	t.Setenv("APP_AUTH_TOKEN", "s3cret")
	t.Setenv("APP_DB__HOST", "db")
	t.Setenv("APP_DB__PORT", "5432")

	cfg := Load()

	assert.Equal(t, "127.0.0.1", cfg.RestConfig.Host)
	assert.Equal(t, 9090, cfg.RestConfig.Port)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.RestConfig.TrustedProxies)
	assert.Equal(t, 3*time.Second, cfg.RestConfig.ShutdownTimeout)
	assert.Equal(t, "token", cfg.AuthConfig.Mode)
	assert.Equal(t, "s3cret", cfg.AuthConfig.Token)
	assert.Equal(t, "db", cfg.DatabaseConfig.Host)
	assert.Equal(t, 5432, cfg.DatabaseConfig.Port)
	require.NoError(t, cfg.Validate())
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown auth mode", map[string]string{"APP_AUTH_MODE": "basic"}},
		{"token mode without token", map[string]string{"APP_AUTH_MODE": "token"}},
		{"jwt mode without secret", map[string]string{"APP_AUTH_MODE": "jwt"}},
		{"port out of range", map[string]string{"APP_REST_PORT": "70000"}},
		{"unknown log level", map[string]string{"APP_LOG_LEVEL": "verbose"}},
		{"unknown log format", map[string]string{"APP_LOG_FORMAT": "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			err := Load().Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Equal(t, []string{"a", "b", "c"}, splitList("a, b,,c "))
}
