package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, conversion rates, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Points   PointsConfig
	Gateway  GatewayConfig
	Checkout CheckoutConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,Idempotency-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

// PointsConfig configures the remote loyalty-points ledger.
// PointValueCents is the cash value of one point in minor currency units.
type PointsConfig struct {
	BaseURL         string        `envconfig:"POINTS_BASE_URL" required:"true"`
	Timeout         time.Duration `envconfig:"POINTS_TIMEOUT" default:"15s"`
	PointValueCents int64         `envconfig:"POINTS_VALUE_CENTS" default:"1"`
	RefundAttempts  int           `envconfig:"POINTS_REFUND_ATTEMPTS" default:"3"`
}

type GatewayConfig struct {
	EpayBaseURL    string `envconfig:"GATEWAY_EPAY_BASE_URL" default:"https://pay.example.com/epay"`
	LinepayBaseURL string `envconfig:"GATEWAY_LINEPAY_BASE_URL" default:"https://pay.example.com/linepay"`
}

type CheckoutConfig struct {
	DraftTTL      time.Duration `envconfig:"CHECKOUT_DRAFT_TTL" default:"30m"`
	ShippingCents int64         `envconfig:"CHECKOUT_SHIPPING_CENTS" default:"350"`
	SubmitTimeout time.Duration `envconfig:"CHECKOUT_SUBMIT_TIMEOUT" default:"15s"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "24h",
		},
		Points: PointsConfig{
			BaseURL:         "http://localhost:18089",
			Timeout:         time.Second,
			PointValueCents: 1,
			RefundAttempts:  3,
		},
		Checkout: CheckoutConfig{
			DraftTTL:      30 * time.Minute,
			ShippingCents: 350,
			SubmitTimeout: time.Second,
		},
	}
}
