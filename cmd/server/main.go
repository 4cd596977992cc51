// Command server runs the settlement engine behind gRPC, with the outbox
// broadcaster, periodic snapshots and a metrics endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"bookie/api/grpcserver"
	"bookie/api/pb"
	"bookie/domain/betting"
	"bookie/infra/blob"
	"bookie/infra/config"
	"bookie/infra/kafka"
	"bookie/infra/logger"
	"bookie/infra/metrics"
	"bookie/infra/postgres"
	"bookie/infra/redis"
	"bookie/infra/sequence"
	entrywal "bookie/infra/wal/entry"
	exitwal "bookie/infra/wal/exit"
	"bookie/jobs/broadcaster"
	"bookie/service"
	"bookie/snapshot"
)

func main() {
	configPath := flag.String("config", "", "path to TOML configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("bookie", cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
	log.Info("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	m := metrics.New()

	// ---------------- Storage ----------------

	wal, err := entrywal.Open(entrywal.Config{
		Dir:             cfg.WAL.Dir,
		SegmentSize:     cfg.WAL.SegmentSize,
		SegmentDuration: cfg.WAL.SegmentDuration.Duration,
		SyncEveryWrite:  cfg.WAL.SyncEveryWrite,
		Logger:          log,
	})
	if err != nil {
		return err
	}

	outbox, err := exitwal.Open(cfg.Outbox.Dir)
	if err != nil {
		_ = wal.Close()
		return err
	}
	defer outbox.Close()

	// ---------------- Engine ----------------

	params := betting.Params{
		PercentFee:    cfg.Engine.PercentFee,
		FeeAccount:    betting.AccountID(cfg.Engine.FeeAccount),
		MinMultiplier: betting.Multiplier(cfg.Engine.MinMultiplier),
		MaxMultiplier: betting.Multiplier(cfg.Engine.MaxMultiplier),
	}
	ledger := betting.NewAccounts()
	engine := betting.NewEngine(params, ledger)

	svc := service.New(engine, ledger, sequence.New(0), wal, outbox, m, log)
	defer svc.Close()

	if _, err := svc.Recover(cfg.Snapshot.Dir, cfg.WAL.Dir); err != nil {
		return errors.Wrap(err, "recover")
	}

	// ---------------- Sinks ----------------

	sinks, err := openSinks(ctx, cfg)
	if err != nil {
		return err
	}
	bc := broadcaster.New(outbox, sinks, broadcaster.Config{
		Interval:   cfg.Broadcaster.Interval.Duration,
		BatchSize:  cfg.Broadcaster.BatchSize,
		MaxRetries: cfg.Broadcaster.MaxRetries,
	}, log, m)
	defer bc.Close()

	var archiver service.Archiver
	if cfg.Snapshot.Archive {
		a, err := blob.New(ctx, blob.Config{
			Endpoint:       cfg.S3.Endpoint,
			Region:         cfg.S3.Region,
			Bucket:         cfg.S3.Bucket,
			Prefix:         cfg.S3.Prefix,
			AccessKey:      cfg.S3.AccessKey,
			SecretKey:      cfg.S3.SecretKey,
			ForcePathStyle: cfg.S3.ForcePathStyle,
		})
		if err != nil {
			return err
		}
		archiver = a
	}
	snapWriter := &snapshot.Writer{Dir: cfg.Snapshot.Dir, Keep: cfg.Snapshot.Keep}

	// ---------------- Transport ----------------

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		return errors.Wrapf(err, "listen %s", cfg.Server.GRPCAddr)
	}
	grpcSrv := grpc.NewServer(grpc.UnaryInterceptor(grpcserver.UnaryLogger(log)))
	pb.RegisterSettlementServer(grpcSrv, grpcserver.NewServer(svc, log))

	hs := health.NewServer()
	hs.SetServingStatus(pb.Settlement_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcSrv, hs)

	metricsSrv := metrics.NewServer(cfg.Server.MetricsAddr, m.Registry, svc.Health)

	// ---------------- Run ----------------

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error { return bc.Run(ctx) })
	g.Go(func() error {
		return svc.RunSnapshots(ctx, snapWriter, archiver, cfg.Snapshot.Interval.Duration)
	})
	g.Go(func() error {
		log.Info("grpc listening", zap.String("addr", cfg.Server.GRPCAddr))
		if err := grpcSrv.Serve(lis); !errors.Is(err, grpc.ErrServerStopped) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		log.Info("metrics listening", zap.String("addr", cfg.Server.MetricsAddr))
		if err := metricsSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		hs.Shutdown()
		grpcSrv.GracefulStop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return metricsSrv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func openSinks(ctx context.Context, cfg *config.Config) ([]broadcaster.Sink, error) {
	var sinks []broadcaster.Sink
	for _, name := range cfg.Broadcaster.Sinks {
		switch name {
		case config.SinkKafka:
			if cfg.Kafka.Driver == config.DriverKafkaGo {
				sinks = append(sinks, kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic))
				continue
			}
			s, err := broadcaster.NewSaramaSink(cfg.Kafka.Brokers, cfg.Kafka.Topic)
			if err != nil {
				return nil, err
			}
			sinks = append(sinks, s)

		case config.SinkRedis:
			client, err := redis.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
			if err != nil {
				return nil, err
			}
			sinks = append(sinks, redis.NewPublisher(client, cfg.Redis.Channel))

		case config.SinkPostgres:
			pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.PoolMaxConns)
			if err != nil {
				return nil, err
			}
			if err := postgres.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, err
			}
			sinks = append(sinks, postgres.NewEventStore(pool))

		default:
			return nil, errors.Newf("unknown sink %q", name)
		}
	}
	return sinks, nil
}
