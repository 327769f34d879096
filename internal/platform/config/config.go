package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures the full runtime configuration for the staking pool
// service. It is built from environment variables so main stays lean.
type Server struct {
	Addr          string
	JWTSigningKey string
	DevMode       bool

	// OwnerAddress receives the owner capability at bootstrap.
	OwnerAddress string

	// PostgresURL enables the durable event store when set; empty means the
	// in-memory store is used.
	PostgresURL string

	Redis RedisConfig
	Kafka KafkaConfig

	// MinStake is the minimum stake principal in base units (9 decimals).
	MinStake uint64
	// Periods overrides the lock-period offering when non-nil, mapping days
	// to APY basis points.
	Periods map[uint32]uint64
	// MaxSupply caps the treasury mint in base units.
	MaxSupply uint64
	// EventBuffer sizes the notification channel between the pool service
	// and the persisting worker.
	EventBuffer int
}

// RedisConfig holds connection settings for the stats snapshot cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// StatsTTL bounds staleness of the cached pool stats snapshot.
	StatsTTL time.Duration
}

// KafkaConfig holds settings for the optional event mirror.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	addr := os.Getenv("STAKEPOOL_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Use a default for development - should be overridden in production
		jwtSigningKey = "dev-secret-key-change-in-production"
	}

	owner := os.Getenv("STAKEPOOL_OWNER")
	if owner == "" {
		owner = "stakepool-owner"
	}

	var brokers []string
	if raw := os.Getenv("KAFKA_BROKERS"); raw != "" {
		for _, b := range strings.Split(raw, ",") {
			if b = strings.TrimSpace(b); b != "" {
				brokers = append(brokers, b)
			}
		}
	}
	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "stakepool.events"
	}

	return Server{
		Addr:          addr,
		JWTSigningKey: jwtSigningKey,
		DevMode:       os.Getenv("DEV_MODE") == "true",
		OwnerAddress:  owner,
		PostgresURL:   os.Getenv("POSTGRES_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
			StatsTTL:     envDuration("STATS_CACHE_TTL", 5*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers: brokers,
			Topic:   topic,
		},
		MinStake:    envUint64("MIN_STAKE", 1_000_000_000),
		Periods:     envPeriods("STAKE_PERIODS"),
		MaxSupply:   envUint64("MAX_SUPPLY", 1_000_000_000_000_000_000),
		EventBuffer: envInt("EVENT_BUFFER", 1024),
	}
}

// envPeriods parses a "days:apy_bp,days:apy_bp" list, e.g.
// "30:500,90:800,180:1200,365:1800". Returns nil (use the built-in table)
// when unset or malformed.
func envPeriods(key string) map[uint32]uint64 {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	periods := make(map[uint32]uint64)
	for _, pair := range strings.Split(raw, ",") {
		days, apy, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok {
			return nil
		}
		d, err := strconv.ParseUint(days, 10, 32)
		if err != nil {
			return nil
		}
		a, err := strconv.ParseUint(apy, 10, 64)
		if err != nil {
			return nil
		}
		periods[uint32(d)] = a
	}
	if len(periods) == 0 {
		return nil
	}
	return periods
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envUint64(key string, fallback uint64) uint64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return v
}
