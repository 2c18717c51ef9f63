package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets, etc.)
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Checkout CheckoutConfig
	Cookie   CookieConfig
	CSRF     CSRFConfig
	CORS     CORSConfig
	Cache    CacheConfig
	Log      LogConfig
	Time     TimeConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

// BackendConfig points at the venue booking REST API this frontend talks to.
type BackendConfig struct {
	BaseURL string        `envconfig:"BACKEND_BASE_URL" default:"http://localhost:8080"`
	Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"15s"`
}

type CheckoutConfig struct {
	// Key is the publishable Razorpay key. Booking is refused while it is empty.
	Key          string        `envconfig:"RAZORPAY_KEY"`
	ScriptURL    string        `envconfig:"RAZORPAY_SCRIPT_URL" default:"https://checkout.razorpay.com/v1/checkout.js"`
	Currency     string        `envconfig:"CHECKOUT_CURRENCY" default:"INR"`
	MerchantName string        `envconfig:"CHECKOUT_MERCHANT_NAME" default:"EventBooking"`
	Timeout      time.Duration `envconfig:"CHECKOUT_TIMEOUT" default:"15m"`
	// Retention keeps finished attempts around so the callback can read the outcome.
	Retention time.Duration `envconfig:"CHECKOUT_RETENTION" default:"2m"`
}

type CookieConfig struct {
	Domain   string        `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool          `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string        `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
	MaxAge   time.Duration `envconfig:"COOKIE_MAX_AGE" default:"720h"`
	// HashKey signs the session cookie; BlockKey, when set, also encrypts it.
	HashKey  string `envconfig:"SESSION_HASH_KEY" required:"true"`
	BlockKey string `envconfig:"SESSION_BLOCK_KEY"`
}

type CSRFConfig struct {
	AuthKey string `envconfig:"CSRF_AUTH_KEY" required:"true"`
	Secure  bool   `envconfig:"CSRF_SECURE" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"https://checkout.razorpay.com,https://api.razorpay.com"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type CacheConfig struct {
	TTL time.Duration `envconfig:"QUERY_CACHE_TTL" default:"30s"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5.5*60*60
}

// TimeConfig names the wall-clock zone that offset-less backend timestamps belong to.
type TimeConfig struct {
	Zone string `envconfig:"APP_TIMEZONE" default:"Local"`
}

func (c TimeConfig) Location() (*time.Location, error) {
	if c.Zone == "" || c.Zone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Zone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.Zone, err)
	}
	return loc, nil
}

// LoadConfig reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if len(cfg.CSRF.AuthKey) != 32 {
		return Config{}, fmt.Errorf("CSRF_AUTH_KEY must be 32 bytes, got %d", len(cfg.CSRF.AuthKey))
	}
	if len(cfg.Cookie.HashKey) < 32 {
		return Config{}, fmt.Errorf("SESSION_HASH_KEY must be at least 32 bytes, got %d", len(cfg.Cookie.HashKey))
	}
	switch len(cfg.Cookie.BlockKey) {
	case 0, 16, 24, 32:
	default:
		return Config{}, fmt.Errorf("SESSION_BLOCK_KEY must be 16, 24 or 32 bytes, got %d", len(cfg.Cookie.BlockKey))
	}
	if _, err := cfg.Time.Location(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ReadTimeout:     5 * time.Second,
			ShutdownTimeout: time.Second,
		},
		Backend: BackendConfig{
			BaseURL: "http://localhost:18080",
			Timeout: 5 * time.Second,
		},
		Checkout: CheckoutConfig{
			Key:          "rzp_test_key",
			ScriptURL:    "https://checkout.razorpay.com/v1/checkout.js",
			Currency:     "INR",
			MerchantName: "EventBooking",
			Timeout:      5 * time.Second,
			Retention:    time.Minute,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
			MaxAge:   time.Hour,
			HashKey:  "fedcba9876543210fedcba9876543210",
		},
		CSRF: CSRFConfig{
			AuthKey: "0123456789abcdef0123456789abcdef",
		},
		Cache: CacheConfig{
			TTL: time.Minute,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kolkata",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		Time: TimeConfig{
			Zone: "UTC",
		},
	}
}
