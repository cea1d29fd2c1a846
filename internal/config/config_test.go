package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func validConfig() *Config {
	return &Config{
		Gin:     GinConfig{Mode: "release"},
		Payment: PaymentConfig{Secret: "sk_test"},
		Auth:    AuthConfig{JWTSecret: "jwt"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing payment secret", func(c *Config) { c.Payment.Secret = "" }, true},
		{"missing jwt secret", func(c *Config) { c.Auth.JWTSecret = "" }, true},
		{"test mode skips secrets", func(c *Config) {
			c.Gin.Mode = "test"
			c.Payment.Secret = ""
			c.Auth.JWTSecret = ""
		}, false},
		{"telegram token without channel", func(c *Config) { c.Social.TelegramBotToken = "123:abc" }, true},
		{"telegram channel without token", func(c *Config) { c.Social.TelegramChannel = "@trainings" }, true},
		{"telegram complete", func(c *Config) {
			c.Social.TelegramBotToken = "123:abc"
			c.Social.TelegramChannel = "@trainings"
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	assert.Equal(t, logger.DebugLevel, LoggerConfig{Level: "debug"}.LogLevel())
	assert.Equal(t, logger.WarnLevel, LoggerConfig{Level: "warn"}.LogLevel())
	assert.Equal(t, logger.ErrorLevel, LoggerConfig{Level: "error"}.LogLevel())
	assert.Equal(t, logger.InfoLevel, LoggerConfig{Level: "info"}.LogLevel())
	assert.Equal(t, logger.InfoLevel, LoggerConfig{Level: ""}.LogLevel())
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := &PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "trainings", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=trainings sslmode=disable", p.DSN())
}
