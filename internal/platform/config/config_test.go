package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Memory")
	t.Setenv("PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com")
	t.Setenv("JWT_EXPIRY_DURATION", "30m")
	t.Setenv("OVERDUE_LOOKBACK_MONTHS", "6")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverMemory, cfg.StoreDriver)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, 6, cfg.OverdueLookbackMonths)
}

func TestLoadConfig_FallbacksForBadValues(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")
	t.Setenv("JWT_EXPIRY_DURATION", "soon")
	t.Setenv("OVERDUE_LOOKBACK_MONTHS", "0")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 12, cfg.OverdueLookbackMonths)
	assert.Equal(t, "payment.recorded", cfg.KafkaPaymentsTopic)
}
