package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// Identity providers.
const (
	AuthProviderJWT    = "jwt"
	AuthProviderGoogle = "google"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// Storage
	DBDriver       string
	DatabaseURL    string // postgres
	MongoURI       string
	MongoDatabase  string
	RunMigrations  bool
	MigrationsPath string

	// Payments
	StripeSecretKey         string
	WebsiteDomain           string
	PaymentCurrency         string
	PaymentAmountMultiplier int64

	// Identity
	AuthProvider   string
	JWTSecret      string
	JWTIssuer      string
	GoogleClientID string

	// HTTP
	CORSAllowedOrigins []string
	RateLimit          string
	RedisURL           string
	ListMaxLimit       int
	RequestTimeout     time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "5000")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "asset_management_db")
	v.SetDefault("MONGO_HOST", "localhost:27017")
	v.SetDefault("MONGO_DATABASE", "asset_management_db")
	v.SetDefault("RUN_MIGRATIONS", true)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("WEBSITE_DOMAIN", "http://localhost:5173/")
	v.SetDefault("PAYMENT_CURRENCY", "usd")
	v.SetDefault("PAYMENT_AMOUNT_MULTIPLIER", 100)
	v.SetDefault("AUTH_PROVIDER", AuthProviderJWT)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("LIST_MAX_LIMIT", 500)
	v.SetDefault("REQUEST_TIMEOUT", "15s")
	v.AutomaticEnv()

	cfg := &Config{
		Port:                    v.GetString("PORT"),
		IsProduction:            v.GetBool("IS_PRODUCTION"),
		DBDriver:                strings.ToLower(v.GetString("DB_DRIVER")),
		MongoDatabase:           v.GetString("MONGO_DATABASE"),
		RunMigrations:           v.GetBool("RUN_MIGRATIONS"),
		MigrationsPath:          v.GetString("MIGRATIONS_PATH"),
		StripeSecretKey:         v.GetString("STRIPE_SECRET_KEY"),
		WebsiteDomain:           v.GetString("WEBSITE_DOMAIN"),
		PaymentCurrency:         strings.ToLower(v.GetString("PAYMENT_CURRENCY")),
		PaymentAmountMultiplier: v.GetInt64("PAYMENT_AMOUNT_MULTIPLIER"),
		AuthProvider:            strings.ToLower(v.GetString("AUTH_PROVIDER")),
		JWTSecret:               v.GetString("JWT_SECRET"),
		JWTIssuer:               v.GetString("JWT_ISSUER"),
		GoogleClientID:          v.GetString("GOOGLE_CLIENT_ID"),
		CORSAllowedOrigins:      splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:               v.GetString("RATE_LIMIT"),
		RedisURL:                v.GetString("REDIS_URL"),
		ListMaxLimit:            v.GetInt("LIST_MAX_LIMIT"),
		RequestTimeout:          v.GetDuration("REQUEST_TIMEOUT"),
	}

	// Older deployments name the gateway key after the database secret.
	if cfg.StripeSecretKey == "" {
		cfg.StripeSecretKey = v.GetString("DB_PAYMENT_STRIPE_SECRET")
	}
	if cfg.StripeSecretKey == "" {
		log.Println("Warning: STRIPE_SECRET_KEY not set. Checkout calls will fail.")
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		cfg.DatabaseURL = v.GetString("PGSQL_URL")
		if cfg.DatabaseURL == "" {
			user, pass := v.GetString("DB_USER"), v.GetString("DB_PASS")
			if user == "" || pass == "" {
				return nil, errors.New("database credentials missing: set PGSQL_URL or DB_USER and DB_PASS")
			}
			cfg.DatabaseURL = (&url.URL{
				Scheme:   "postgres",
				User:     url.UserPassword(user, pass),
				Host:     v.GetString("DB_HOST") + ":" + v.GetString("DB_PORT"),
				Path:     "/" + v.GetString("DB_NAME"),
				RawQuery: "sslmode=disable",
			}).String()
		}
	case DriverMongo:
		cfg.MongoURI = v.GetString("MONGO_URI")
		if cfg.MongoURI == "" {
			user, pass := v.GetString("DB_USER"), v.GetString("DB_PASS")
			if user == "" || pass == "" {
				return nil, errors.New("database credentials missing: set MONGO_URI or DB_USER and DB_PASS")
			}
			cfg.MongoURI = (&url.URL{
				Scheme:   "mongodb",
				User:     url.UserPassword(user, pass),
				Host:     v.GetString("MONGO_HOST"),
				Path:     "/",
				RawQuery: "retryWrites=true&w=majority",
			}).String()
		}
	case DriverMemory:
		log.Println("Warning: DB_DRIVER=memory keeps all data in process memory.")
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	switch cfg.AuthProvider {
	case AuthProviderJWT:
		if cfg.JWTSecret == "" {
			return nil, errors.New("JWT_SECRET is required when AUTH_PROVIDER=jwt")
		}
	case AuthProviderGoogle:
		if cfg.GoogleClientID == "" {
			return nil, errors.New("GOOGLE_CLIENT_ID is required when AUTH_PROVIDER=google")
		}
	default:
		return nil, fmt.Errorf("unknown AUTH_PROVIDER %q", cfg.AuthProvider)
	}

	if cfg.PaymentAmountMultiplier <= 0 {
		return nil, fmt.Errorf("PAYMENT_AMOUNT_MULTIPLIER must be positive, got %d", cfg.PaymentAmountMultiplier)
	}
	if cfg.ListMaxLimit <= 0 {
		cfg.ListMaxLimit = 500
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
