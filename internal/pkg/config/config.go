package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, commission)
// -----------------------------------------------------------------------------

type Config struct {
	Server      ServerConfig
	DB          DBConfig
	CORS        CORSConfig
	Log         LogConfig
	JWT         JWTConfig
	Cookie      CookieConfig
	Marketplace MarketplaceConfig
	Payment     PaymentConfig
	Mail        MailConfig
	Storage     StorageConfig
	Worker      WorkerConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Muscat"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Content-Disposition"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Muscat"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"14400"` // 4*60*60
	// File enables a rotating log file next to stdout when set
	File       string `envconfig:"LOG_FILE"`
	MaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"64"`
	MaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"7"`
	MaxAgeDays int    `envconfig:"LOG_FILE_MAX_AGE_DAYS" default:"7"`
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"15m"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type MarketplaceConfig struct {
	// Business calendar used for "today" checks on bookings
	TimeZone          string  `envconfig:"MARKETPLACE_TIMEZONE" default:"Asia/Muscat"`
	CommissionPercent float64 `envconfig:"MARKETPLACE_COMMISSION_PERCENT" default:"10"`
	Currency          string  `envconfig:"MARKETPLACE_CURRENCY" default:"OMR"`
	// NodeID seeds the snowflake generator for merchant order references
	NodeID int64 `envconfig:"MARKETPLACE_NODE_ID" default:"1"`
}

type PaymentConfig struct {
	BaseURL        string        `envconfig:"PAYMOB_BASE_URL" default:"https://accept.paymob.com"`
	APIKey         string        `envconfig:"PAYMOB_API_KEY"`
	IntegrationID  string        `envconfig:"PAYMOB_INTEGRATION_ID"`
	IframeID       string        `envconfig:"PAYMOB_IFRAME_ID"`
	KeyExpiry      int           `envconfig:"PAYMOB_KEY_EXPIRY_SECONDS" default:"3600"`
	Timeout        time.Duration `envconfig:"PAYMOB_TIMEOUT" default:"15s"`
	BillingCity    string        `envconfig:"PAYMOB_BILLING_CITY" default:"Muscat"`
	BillingState   string        `envconfig:"PAYMOB_BILLING_STATE" default:"Muscat"`
	BillingCountry string        `envconfig:"PAYMOB_BILLING_COUNTRY" default:"OM"`
}

type MailConfig struct {
	Host     string `envconfig:"SMTP_HOST"`
	Port     int    `envconfig:"SMTP_PORT" default:"587"`
	Username string `envconfig:"SMTP_USERNAME"`
	Password string `envconfig:"SMTP_PASSWORD"`
	From     string `envconfig:"MAIL_FROM" default:"Oman Rentals <bookings@omanrentals.com>"`
	// NoReplyDomain builds the placeholder payer address for guests without email
	NoReplyDomain string `envconfig:"MAIL_NOREPLY_DOMAIN" default:"noreply.omanrentals.com"`
}

type StorageConfig struct {
	Bucket        string `envconfig:"STORAGE_BUCKET" default:"fleet-images"`
	Region        string `envconfig:"STORAGE_REGION" default:"me-central-1"`
	Endpoint      string `envconfig:"STORAGE_ENDPOINT"`
	PublicBaseURL string `envconfig:"STORAGE_PUBLIC_BASE_URL"`
	UsePathStyle  bool   `envconfig:"STORAGE_USE_PATH_STYLE" default:"false"`
	MaxUploadMB   int64  `envconfig:"STORAGE_MAX_UPLOAD_MB" default:"10"`
}

type WorkerConfig struct {
	Enabled     bool   `envconfig:"WORKER_ENABLED" default:"true"`
	Schedule    string `envconfig:"WORKER_SCHEDULE" default:"@every 15s"`
	PoolSize    int    `envconfig:"WORKER_POOL_SIZE" default:"8"`
	BatchSize   int32  `envconfig:"WORKER_BATCH_SIZE" default:"50"`
	MaxAttempts int32  `envconfig:"WORKER_MAX_ATTEMPTS" default:"5"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c MarketplaceConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ScheduleParser accepts five-field crontab lines, an optional leading seconds
// field and descriptors such as "@every 30s".
var ScheduleParser = cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Validate catches settings envconfig accepts but the server cannot run with
func (c Config) Validate() error {
	var problems []error
	if _, err := time.LoadLocation(c.Marketplace.TimeZone); err != nil {
		problems = append(problems, fmt.Errorf("MARKETPLACE_TIMEZONE %q: %w", c.Marketplace.TimeZone, err))
	}
	if c.Marketplace.CommissionPercent < 0 || c.Marketplace.CommissionPercent >= 100 {
		problems = append(problems, fmt.Errorf("MARKETPLACE_COMMISSION_PERCENT must be in [0, 100), got %v", c.Marketplace.CommissionPercent))
	}
	// snowflake node ids are 10 bits
	if c.Marketplace.NodeID < 0 || c.Marketplace.NodeID > 1023 {
		problems = append(problems, fmt.Errorf("MARKETPLACE_NODE_ID must be in [0, 1023], got %d", c.Marketplace.NodeID))
	}
	if c.Storage.MaxUploadMB <= 0 {
		problems = append(problems, errors.New("STORAGE_MAX_UPLOAD_MB must be positive"))
	}
	if c.Worker.Enabled {
		if _, err := ScheduleParser.Parse(c.Worker.Schedule); err != nil {
			problems = append(problems, fmt.Errorf("WORKER_SCHEDULE %q: %w", c.Worker.Schedule, err))
		}
		if c.Worker.PoolSize <= 0 || c.Worker.BatchSize <= 0 || c.Worker.MaxAttempts <= 0 {
			problems = append(problems, errors.New("WORKER_POOL_SIZE, WORKER_BATCH_SIZE and WORKER_MAX_ATTEMPTS must be positive"))
		}
	}
	return errors.Join(problems...)
}

// a missing .env is fine; the process environment still applies
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// LoadDBConfig reads only the database settings, for tools that never start the server
func LoadDBConfig() (DBConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return DBConfig{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process db env config: %w", err)
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
			TimeZone: "Asia/Muscat",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Muscat",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 14400,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-jwt-signing-only",
			AccessTokenDuration:  "15m",
			RefreshTokenDuration: "168h",
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
		},
		Marketplace: MarketplaceConfig{
			TimeZone:          "Asia/Muscat",
			CommissionPercent: 10,
			Currency:          "OMR",
			NodeID:            1,
		},
		Payment: PaymentConfig{
			BaseURL:        "http://127.0.0.1:0",
			KeyExpiry:      3600,
			Timeout:        2 * time.Second,
			BillingCity:    "Muscat",
			BillingState:   "Muscat",
			BillingCountry: "OM",
		},
		Mail: MailConfig{
			From:          "Oman Rentals <bookings@omanrentals.com>",
			NoReplyDomain: "noreply.omanrentals.com",
		},
		Storage: StorageConfig{
			Bucket:      "fleet-images",
			Region:      "me-central-1",
			MaxUploadMB: 10,
		},
		Worker: WorkerConfig{
			Enabled:     false,
			Schedule:    "@every 15s",
			PoolSize:    2,
			BatchSize:   10,
			MaxAttempts: 3,
		},
	}
}
