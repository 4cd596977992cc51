package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
)

// Load merges the TOML file at path over Defaults and applies BOOKIE_*
// environment overrides. An empty path skips the file. The result is not
// validated.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, errors.Wrapf(err, "decode %s", path)
		}
	}

	// .env is optional
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.Env, "BOOKIE_ENV")
	setStr(&cfg.LogLevel, "BOOKIE_LOG_LEVEL")

	setStr(&cfg.Server.GRPCAddr, "BOOKIE_SERVER_GRPC_ADDR")
	setStr(&cfg.Server.MetricsAddr, "BOOKIE_SERVER_METRICS_ADDR")

	setUint32(&cfg.Engine.PercentFee, "BOOKIE_ENGINE_PERCENT_FEE_BPS")
	setUint64(&cfg.Engine.FeeAccount, "BOOKIE_ENGINE_FEE_ACCOUNT")
	setUint32(&cfg.Engine.MinMultiplier, "BOOKIE_ENGINE_MIN_MULTIPLIER")
	setUint32(&cfg.Engine.MaxMultiplier, "BOOKIE_ENGINE_MAX_MULTIPLIER")

	setStr(&cfg.WAL.Dir, "BOOKIE_WAL_DIR")
	setInt64(&cfg.WAL.SegmentSize, "BOOKIE_WAL_SEGMENT_SIZE")
	setBool(&cfg.WAL.SyncEveryWrite, "BOOKIE_WAL_SYNC_EVERY_WRITE")
	setStr(&cfg.Outbox.Dir, "BOOKIE_OUTBOX_DIR")

	setStr(&cfg.Snapshot.Dir, "BOOKIE_SNAPSHOT_DIR")
	setDuration(&cfg.Snapshot.Interval, "BOOKIE_SNAPSHOT_INTERVAL")
	setBool(&cfg.Snapshot.Archive, "BOOKIE_SNAPSHOT_ARCHIVE")

	setDuration(&cfg.Broadcaster.Interval, "BOOKIE_BROADCASTER_INTERVAL")
	setStringSlice(&cfg.Broadcaster.Sinks, "BOOKIE_BROADCASTER_SINKS")

	setStringSlice(&cfg.Kafka.Brokers, "BOOKIE_KAFKA_BROKERS")
	setStr(&cfg.Kafka.Topic, "BOOKIE_KAFKA_TOPIC")
	setStr(&cfg.Kafka.Driver, "BOOKIE_KAFKA_DRIVER")

	setStr(&cfg.Redis.Addr, "BOOKIE_REDIS_ADDR")
	setStr(&cfg.Redis.Password, "BOOKIE_REDIS_PASSWORD")
	setStr(&cfg.Redis.Channel, "BOOKIE_REDIS_CHANNEL")

	setStr(&cfg.Postgres.DSN, "BOOKIE_POSTGRES_DSN")

	setStr(&cfg.S3.Endpoint, "BOOKIE_S3_ENDPOINT")
	setStr(&cfg.S3.Region, "BOOKIE_S3_REGION")
	setStr(&cfg.S3.Bucket, "BOOKIE_S3_BUCKET")
	setStr(&cfg.S3.AccessKey, "BOOKIE_S3_ACCESS_KEY")
	setStr(&cfg.S3.SecretKey, "BOOKIE_S3_SECRET_KEY")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setUint32(dst *uint32, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			*dst = uint32(n)
		}
	}
}

func setUint64(dst *uint64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			dst.Duration = d
		}
	}
}

func setStringSlice(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		var out []string
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			*dst = out
		}
	}
}
