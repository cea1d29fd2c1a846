package config

import (
	"errors"
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"    validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"  validate:"required"`
	Redis     RedisConfig     `yaml:"redis"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	Outbox    OutboxConfig    `yaml:"outbox"    validate:"required"`
	Payment   PaymentConfig   `yaml:"payment"   validate:"required"`
	Auth      AuthConfig      `yaml:"auth"`
	SMTP      SMTPConfig      `yaml:"smtp"`
	Social    SocialConfig    `yaml:"social"`
	Listing   ListingConfig   `yaml:"listing"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

// LogLevel maps the configured level onto the wbf logger level.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost" validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"      validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"  validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"  validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"trainings" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"   validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"        validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"         validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"        validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// RedisConfig enables the listing cache when Addr is set.
type RedisConfig struct {
	Addr     string        `yaml:"addr"     env:"REDIS_ADDR"     env-default:""`
	Password string        `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db"       env:"REDIS_DB"       env-default:"0"   validate:"min=0"`
	TTL      time.Duration `yaml:"ttl"      env:"REDIS_TTL"      env-default:"60s" validate:"gt=0"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"30s" validate:"required,gt=0"`
}

type OutboxConfig struct {
	BatchSize   int           `yaml:"batch_size"   env:"OUTBOX_BATCH_SIZE"   env-default:"50"  validate:"min=1"`
	Lease       time.Duration `yaml:"lease"        env:"OUTBOX_LEASE"        env-default:"2m"  validate:"gt=0"`
	MaxAttempts int           `yaml:"max_attempts" env:"OUTBOX_MAX_ATTEMPTS" env-default:"5"   validate:"min=1"`
	Backoff     time.Duration `yaml:"backoff"      env:"OUTBOX_BACKOFF"      env-default:"30s" validate:"gt=0"`
	SendTimeout time.Duration `yaml:"send_timeout" env:"OUTBOX_SEND_TIMEOUT" env-default:"10s" validate:"gt=0"`
}

type PaymentConfig struct {
	CheckoutURL   string `yaml:"checkout_url"    env:"PAYMENT_CHECKOUT_URL"    env-default:"https://checkout.paystack.com/pay" validate:"required,url"`
	PublicBaseURL string `yaml:"public_base_url" env:"PUBLIC_BASE_URL"         env-default:"http://localhost:8080"            validate:"required,url"`
	CallbackPath  string `yaml:"callback_path"   env:"PAYMENT_CALLBACK_PATH"   env-default:"/trainings/payment/callback"     validate:"required"`
	Secret        string `yaml:"secret"          env:"PAYMENT_SECRET"          env-default:""`
	Currency      string `yaml:"currency"        env:"PAYMENT_CURRENCY"        env-default:"NGN"                             validate:"required,oneof=NGN USD"`
	OperatorEmail string `yaml:"operator_email"  env:"PAYMENT_OPERATOR_EMAIL"  env-default:""                                validate:"omitempty,email"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-default:""`
}

type SMTPConfig struct {
	Host     string        `yaml:"host"     env:"SMTP_HOST"     env-default:""`
	Port     int           `yaml:"port"     env:"SMTP_PORT"     env-default:"587"                     validate:"min=1,max=65535"`
	Username string        `yaml:"username" env:"SMTP_USERNAME" env-default:""`
	Password string        `yaml:"password" env:"SMTP_PASSWORD" env-default:""`
	From     string        `yaml:"from"     env:"SMTP_FROM"     env-default:"noreply@localhost"       validate:"required"`
	Timeout  time.Duration `yaml:"timeout"  env:"SMTP_TIMEOUT"  env-default:"10s"                     validate:"gt=0"`
}

type SocialConfig struct {
	TelegramBotToken string            `yaml:"telegram_bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
	TelegramChannel  string            `yaml:"telegram_channel"   env:"TELEGRAM_CHANNEL"   env-default:""`
	Webhooks         map[string]string `yaml:"webhooks"`
	Timeout          time.Duration     `yaml:"timeout"            env:"SOCIAL_TIMEOUT"     env-default:"10s" validate:"gt=0"`
}

type ListingConfig struct {
	FrontendKeywords []string `yaml:"frontend_keywords" env:"LISTING_FRONTEND_KEYWORDS" env-separator:","`
}

// Validate checks settings that depend on each other.
func (c *Config) Validate() error {
	if c.Gin.Mode == "test" {
		return nil
	}
	if c.Payment.Secret == "" {
		return errors.New("payment.secret is required to verify webhooks")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required for admin routes")
	}
	if (c.Social.TelegramBotToken == "") != (c.Social.TelegramChannel == "") {
		return errors.New("social.telegram_bot_token and social.telegram_channel must be set together")
	}
	return nil
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
	return &cfg
}
