package broadcaster

import (
	"context"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"bookie/domain/betting"
	"bookie/infra/metrics"
	exitwal "bookie/infra/wal/exit"
)

// Sink receives batches of settlement events. Publish must be safe to
// repeat: delivery is at-least-once.
type Sink interface {
	Name() string
	Publish(ctx context.Context, envs []betting.Envelope) error
	Close() error
}

type Config struct {
	Interval   time.Duration
	BatchSize  int
	MaxRetries uint32
}

// Broadcaster drains the outbox into every configured sink.
type Broadcaster struct {
	outbox  *exitwal.Outbox
	sinks   []Sink
	cfg     Config
	log     *zap.Logger
	metrics *metrics.Metrics
}

func New(
	outbox *exitwal.Outbox,
	sinks []Sink,
	cfg Config,
	log *zap.Logger,
	m *metrics.Metrics,
) *Broadcaster {
	if cfg.Interval <= 0 {
		cfg.Interval = 250 * time.Millisecond
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 256
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 10
	}
	return &Broadcaster{
		outbox:  outbox,
		sinks:   sinks,
		cfg:     cfg,
		log:     log.Named("broadcaster"),
		metrics: m,
	}
}

// Run publishes on every tick until ctx is done.
func (b *Broadcaster) Run(ctx context.Context) error {
	b.log.Info("started",
		zap.Int("sinks", len(b.sinks)),
		zap.Duration("interval", b.cfg.Interval),
	)

	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.log.Info("stopped")
			return nil
		case <-ticker.C:
			if _, err := b.Flush(ctx); err != nil {
				b.log.Warn("flush failed", zap.Error(err))
			}
		}
	}
}

// Flush makes one delivery attempt for up to BatchSize pending entries and
// returns how many were acknowledged.
//
// Entries left SENT by a crash are picked up again before NEW ones.
func (b *Broadcaster) Flush(ctx context.Context) (int, error) {
	batch, err := b.pending()
	if err != nil {
		return 0, err
	}
	defer b.refreshGauge()

	if len(batch) == 0 {
		return 0, nil
	}

	ready := make([]exitwal.Entry, 0, len(batch))
	envs := make([]betting.Envelope, 0, len(batch))
	for _, e := range batch {
		if err := b.outbox.UpdateState(e.Seq, e.Index, exitwal.StateSent, e.Retries); err != nil {
			return 0, err
		}
		var env betting.Envelope
		if err := json.Unmarshal(e.Payload, &env); err != nil {
			// undecodable payloads can never be delivered
			b.log.Error("dropping malformed event",
				zap.Uint64("seq", e.Seq), zap.Uint32("index", e.Index), zap.Error(err))
			if err := b.outbox.UpdateState(e.Seq, e.Index, exitwal.StateFailed, e.Retries); err != nil {
				return 0, err
			}
			continue
		}
		ready = append(ready, e)
		envs = append(envs, env)
	}

	if pubErr := b.publish(ctx, envs); pubErr != nil {
		for _, e := range ready {
			retries := e.Retries + 1
			state := exitwal.StateSent
			if retries >= b.cfg.MaxRetries {
				state = exitwal.StateFailed
				b.log.Error("giving up on event",
					zap.Uint64("seq", e.Seq), zap.Uint32("index", e.Index), zap.Uint32("retries", retries))
			}
			if err := b.outbox.UpdateState(e.Seq, e.Index, state, retries); err != nil {
				return 0, err
			}
		}
		return 0, pubErr
	}

	acked := 0
	for _, e := range ready {
		if err := b.outbox.UpdateState(e.Seq, e.Index, exitwal.StateAcked, e.Retries); err != nil {
			return acked, err
		}
		acked++
	}
	return acked, nil
}

func (b *Broadcaster) pending() ([]exitwal.Entry, error) {
	var batch []exitwal.Entry
	collect := func(e exitwal.Entry) error {
		batch = append(batch, e)
		return nil
	}
	if err := b.outbox.ScanByState(exitwal.StateSent, b.cfg.BatchSize, collect); err != nil {
		return nil, err
	}
	if room := b.cfg.BatchSize - len(batch); room > 0 {
		if err := b.outbox.ScanByState(exitwal.StateNew, room, collect); err != nil {
			return nil, err
		}
	}
	return batch, nil
}

func (b *Broadcaster) publish(ctx context.Context, envs []betting.Envelope) error {
	if len(envs) == 0 {
		return nil
	}
	var errs error
	for _, s := range b.sinks {
		if err := s.Publish(ctx, envs); err != nil {
			b.published(s.Name(), "error")
			errs = errors.CombineErrors(errs, errors.Wrapf(err, "sink %s", s.Name()))
			continue
		}
		b.published(s.Name(), "ok")
	}
	return errs
}

func (b *Broadcaster) published(sink, result string) {
	if b.metrics != nil {
		b.metrics.Published.WithLabelValues(sink, result).Inc()
	}
}

func (b *Broadcaster) refreshGauge() {
	if b.metrics == nil {
		return
	}
	counts, err := b.outbox.Count()
	if err != nil {
		return
	}
	b.metrics.OutboxPending.Set(float64(counts[exitwal.StateNew] + counts[exitwal.StateSent]))
}

// Close closes every sink.
func (b *Broadcaster) Close() error {
	var errs error
	for _, s := range b.sinks {
		errs = errors.CombineErrors(errs, s.Close())
	}
	return errs
}
