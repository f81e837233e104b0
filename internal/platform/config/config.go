package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	StoreDriver       string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// BankImportAPIKeyHash is the bcrypt hash of the key the bank-import pipeline presents.
	BankImportAPIKeyHash string
	RateLimit            string
	CORSAllowedOrigins   []string

	KafkaBrokers       []string
	KafkaPaymentsTopic string

	// OverdueLookbackMonths bounds the overdue report for tenants without a lease start.
	OverdueLookbackMonths int
	CurrencySymbol        string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "property-backoffice")
	v.SetDefault("BANK_IMPORT_API_KEY_HASH", "")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_PAYMENTS_TOPIC", "payment.recorded")
	v.SetDefault("OVERDUE_LOOKBACK_MONTHS", 12)
	v.SetDefault("CURRENCY_SYMBOL", "$")
	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:           v.GetString("PGSQL_URL"),
		Port:                  v.GetString("PORT"),
		IsProduction:          v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:         v.GetBool("ENABLE_DB_CHECK"),
		StoreDriver:           strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
		JWTSecret:             v.GetString("JWT_SECRET"),
		JWTIssuer:             v.GetString("JWT_ISSUER"),
		BankImportAPIKeyHash:  v.GetString("BANK_IMPORT_API_KEY_HASH"),
		RateLimit:             v.GetString("RATE_LIMIT"),
		CORSAllowedOrigins:    splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		KafkaBrokers:          splitList(v.GetString("KAFKA_BROKERS")),
		KafkaPaymentsTopic:    v.GetString("KAFKA_PAYMENTS_TOPIC"),
		OverdueLookbackMonths: v.GetInt("OVERDUE_LOOKBACK_MONTHS"),
		CurrencySymbol:        v.GetString("CURRENCY_SYMBOL"),
	}

	if cfg.StoreDriver != StoreDriverPostgres && cfg.StoreDriver != StoreDriverMemory {
		log.Printf("Warning: unknown STORE_DRIVER ('%s'). Defaulting to %s.\n", cfg.StoreDriver, StoreDriverPostgres)
		cfg.StoreDriver = StoreDriverPostgres
	}
	if cfg.DatabaseURL == "" && cfg.StoreDriver == StoreDriverPostgres {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if cfg.BankImportAPIKeyHash == "" {
		log.Println("Warning: BANK_IMPORT_API_KEY_HASH not set. Bank import webhook will reject all requests.")
	}
	if cfg.OverdueLookbackMonths <= 0 {
		cfg.OverdueLookbackMonths = 12
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
