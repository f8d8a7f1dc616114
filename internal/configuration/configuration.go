package configuration

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var Config *AppConfig

// ErrInvalidConfig wraps every validation failure reported by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

var validate = validator.New()

func init() {
	Config = loadFromEnv()
}

type AppConfig struct {
	AppName        string
	AppVersion     string
	AppRevision    string
	AppBuiltAt     string
	Env            string
	RestConfig     *RestConfig `validate:"required"`
	LogConfig      *LogConfig  `validate:"required"`
	AuthConfig     *AuthConfig `validate:"required"`
	DatabaseConfig *DatabaseConfig
}

type RestConfig struct {
	Host            string
	Port            int `validate:"gte=0,lte=65535"`
	TrustedProxies  []string
	CORSOrigins     []string
	ShutdownTimeout time.Duration `validate:"gte=0"`
}

type LogConfig struct {
	Level  string `validate:"omitempty,oneof=debug info warn error"`
	Format string `validate:"omitempty,oneof=json console"`
}

// AuthConfig selects the authorizer that guards the functional API.
type AuthConfig struct {
	Mode        string `validate:"oneof=none token jwt"`
	Token       string `validate:"required_if=Mode token"`
	JWTSecret   string `validate:"required_if=Mode jwt"`
	JWTIssuer   string
	JWTAudience string
	JWTLeeway   time.Duration `validate:"gte=0"`
}

type DatabaseConfig struct {
	DSN      string
	Name     string
	Host     string
	Port     int
	Username string
	Password string
	SSL      string // disable | require | verify-ca | verify-full
	Addr     string
}

// Load re-reads the configuration from the environment.
func Load() *AppConfig {
	return loadFromEnv()
}

// Validate reports the first set of invalid fields, wrapped in ErrInvalidConfig.
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func loadFromEnv() *AppConfig {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_NAME", "values-api")
	v.SetDefault("APP_VERSION", "dev")
	v.SetDefault("APP_REST_PORT", 8080)
	v.SetDefault("APP_REST_CORS_ORIGINS", "*")
	v.SetDefault("APP_REST_SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("APP_LOG_LEVEL", "info")
	v.SetDefault("APP_LOG_FORMAT", "json")
	v.SetDefault("APP_AUTH_MODE", "none")
	v.SetDefault("APP_AUTH_JWT_LEEWAY", 30*time.Second)

	return &AppConfig{
		AppName:     v.GetString("APP_NAME"),
		AppVersion:  v.GetString("APP_VERSION"),
		Env:         v.GetString("APP_ENV"),
		AppRevision: v.GetString("APP_REVISION"),
		AppBuiltAt:  v.GetString("APP_BUILT_AT"),
		RestConfig: &RestConfig{
			Host:            v.GetString("APP_REST_HOST"),
			Port:            v.GetInt("APP_REST_PORT"),
			TrustedProxies:  splitList(v.GetString("APP_REST_TRUSTED_PROXIES")),
			CORSOrigins:     splitList(v.GetString("APP_REST_CORS_ORIGINS")),
			ShutdownTimeout: v.GetDuration("APP_REST_SHUTDOWN_TIMEOUT"),
		},
		LogConfig: &LogConfig{
			Level:  strings.ToLower(v.GetString("APP_LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("APP_LOG_FORMAT")),
		},
		AuthConfig: &AuthConfig{
			Mode:        strings.ToLower(v.GetString("APP_AUTH_MODE")),
			Token:       v.GetString("APP_AUTH_TOKEN"),
			JWTSecret:   v.GetString("APP_AUTH_JWT_SECRET"),
			JWTIssuer:   v.GetString("APP_AUTH_JWT_ISSUER"),
			JWTAudience: v.GetString("APP_AUTH_JWT_AUDIENCE"),
			JWTLeeway:   v.GetDuration("APP_AUTH_JWT_LEEWAY"),
		},
		DatabaseConfig: &DatabaseConfig{
			DSN:      v.GetString("APP_DB__DSN"),
			Name:     v.GetString("APP_DB__NAME"),
			Host:     v.GetString("APP_DB__HOST"),
			Port:     v.GetInt("APP_DB__PORT"),
			Username: v.GetString("APP_DB__USERNAME"),
			Password: v.GetString("APP_DB__PASSWORD"),
			SSL:      v.GetString("APP_DB_SSL"),
			Addr:     v.GetString("APP_DB_ADDR"),
		},
	}
}

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
