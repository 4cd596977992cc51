package config

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// Config is the full server configuration.
type Config struct {
	Env      string `toml:"env"`
	LogLevel string `toml:"log_level"`

	Server      ServerConfig      `toml:"server"`
	Engine      EngineConfig      `toml:"engine"`
	WAL         WALConfig         `toml:"wal"`
	Outbox      OutboxConfig      `toml:"outbox"`
	Snapshot    SnapshotConfig    `toml:"snapshot"`
	Broadcaster BroadcasterConfig `toml:"broadcaster"`
	Kafka       KafkaConfig       `toml:"kafka"`
	Redis       RedisConfig       `toml:"redis"`
	Postgres    PostgresConfig    `toml:"postgres"`
	S3          S3Config          `toml:"s3"`
}

type ServerConfig struct {
	GRPCAddr    string `toml:"grpc_addr"`
	MetricsAddr string `toml:"metrics_addr"`
}

// EngineConfig must be identical on every node replaying the same log.
type EngineConfig struct {
	PercentFee    uint32 `toml:"percent_fee_bps"`
	FeeAccount    uint64 `toml:"fee_account"`
	MinMultiplier uint32 `toml:"min_multiplier"`
	MaxMultiplier uint32 `toml:"max_multiplier"`
}

type WALConfig struct {
	Dir             string   `toml:"dir"`
	SegmentSize     int64    `toml:"segment_size"`
	SegmentDuration Duration `toml:"segment_duration"`
	SyncEveryWrite  bool     `toml:"sync_every_write"`
}

type OutboxConfig struct {
	Dir string `toml:"dir"`
}

type SnapshotConfig struct {
	Dir      string   `toml:"dir"`
	Interval Duration `toml:"interval"`
	Keep     int      `toml:"keep"`
	Archive  bool     `toml:"archive"`
}

type BroadcasterConfig struct {
	Interval   Duration `toml:"interval"`
	BatchSize  int      `toml:"batch_size"`
	MaxRetries uint32   `toml:"max_retries"`
	Sinks      []string `toml:"sinks"`
}

type KafkaConfig struct {
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
	// Driver selects the client: "sarama" or "kafka-go".
	Driver string `toml:"driver"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Channel  string `toml:"channel"`
}

type PostgresConfig struct {
	DSN          string `toml:"dsn"`
	PoolMaxConns int    `toml:"pool_max_conns"`
}

type S3Config struct {
	Endpoint       string `toml:"endpoint"`
	Region         string `toml:"region"`
	Bucket         string `toml:"bucket"`
	Prefix         string `toml:"prefix"`
	AccessKey      string `toml:"access_key"`
	SecretKey      string `toml:"secret_key"`
	ForcePathStyle bool   `toml:"force_path_style"`
}

// Duration decodes TOML strings such as "250ms" or "5m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

const (
	SinkKafka    = "kafka"
	SinkRedis    = "redis"
	SinkPostgres = "postgres"

	DriverSarama  = "sarama"
	DriverKafkaGo = "kafka-go"
)

func Defaults() Config {
	return Config{
		Env:      "local",
		LogLevel: "info",
		Server: ServerConfig{
			GRPCAddr:    ":50051",
			MetricsAddr: ":9090",
		},
		Engine: EngineConfig{
			PercentFee:    200,
			FeeAccount:    0,
			MinMultiplier: 10001,
			MaxMultiplier: 10000000,
		},
		WAL: WALConfig{
			Dir:             "./data/wal",
			SegmentSize:     64 << 20,
			SegmentDuration: Duration{time.Hour},
			SyncEveryWrite:  true,
		},
		Outbox: OutboxConfig{Dir: "./data/outbox"},
		Snapshot: SnapshotConfig{
			Dir:      "./data/snapshots",
			Interval: Duration{time.Minute},
			Keep:     3,
		},
		Broadcaster: BroadcasterConfig{
			Interval:   Duration{250 * time.Millisecond},
			BatchSize:  256,
			MaxRetries: 20,
		},
		Kafka: KafkaConfig{
			Brokers: []string{"localhost:9092"},
			Topic:   "bookie.events",
			Driver:  DriverSarama,
		},
		Redis: RedisConfig{
			Addr:    "localhost:6379",
			Channel: "bookie:events",
		},
		Postgres: PostgresConfig{PoolMaxConns: 4},
		S3: S3Config{
			Region: "us-east-1",
			Prefix: "snapshots/",
		},
	}
}

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var errs []string

	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		errs = append(errs, "unknown log_level "+c.LogLevel)
	}
	if c.Server.GRPCAddr == "" {
		errs = append(errs, "server: grpc_addr must not be empty")
	}

	if c.Engine.PercentFee > 10000 {
		errs = append(errs, "engine: percent_fee_bps must be <= 10000")
	}
	if c.Engine.MinMultiplier <= 10000 {
		errs = append(errs, "engine: min_multiplier must exceed 10000")
	}
	if c.Engine.MaxMultiplier < c.Engine.MinMultiplier {
		errs = append(errs, "engine: max_multiplier must be >= min_multiplier")
	}

	if c.WAL.Dir == "" {
		errs = append(errs, "wal: dir must not be empty")
	}
	if c.WAL.SegmentSize <= 0 {
		errs = append(errs, "wal: segment_size must be > 0")
	}
	if c.Outbox.Dir == "" {
		errs = append(errs, "outbox: dir must not be empty")
	}
	if c.Snapshot.Dir == "" {
		errs = append(errs, "snapshot: dir must not be empty")
	}
	if c.Snapshot.Interval.Duration <= 0 {
		errs = append(errs, "snapshot: interval must be > 0")
	}
	if c.Snapshot.Archive && c.S3.Bucket == "" {
		errs = append(errs, "s3: bucket is required when snapshot.archive is set")
	}

	if c.Broadcaster.Interval.Duration <= 0 {
		errs = append(errs, "broadcaster: interval must be > 0")
	}
	if c.Broadcaster.BatchSize < 1 {
		errs = append(errs, "broadcaster: batch_size must be >= 1")
	}
	for _, s := range c.Broadcaster.Sinks {
		switch s {
		case SinkKafka:
			if len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "" {
				errs = append(errs, "kafka: brokers and topic are required for the kafka sink")
			}
			if c.Kafka.Driver != DriverSarama && c.Kafka.Driver != DriverKafkaGo {
				errs = append(errs, "kafka: driver must be sarama or kafka-go")
			}
		case SinkRedis:
			if c.Redis.Addr == "" || c.Redis.Channel == "" {
				errs = append(errs, "redis: addr and channel are required for the redis sink")
			}
		case SinkPostgres:
			if c.Postgres.DSN == "" {
				errs = append(errs, "postgres: dsn is required for the postgres sink")
			}
		default:
			errs = append(errs, "broadcaster: unknown sink "+s)
		}
	}

	if len(errs) > 0 {
		return errors.Newf("invalid config:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
