package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookie/domain/betting"
)

type batchSender interface {
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// EventStore writes events to settlement_events. Inserts are keyed by
// (seq, idx), so redelivered batches are ignored.
type EventStore struct {
	db    batchSender
	close func()
}

func NewEventStore(pool *pgxpool.Pool) *EventStore {
	return &EventStore{db: pool, close: pool.Close}
}

func (s *EventStore) Name() string { return "postgres" }

const insertEvent = `
	INSERT INTO settlement_events (
		seq, idx, type, market_id, asset_id, bettor_id, bet_id,
		side, multiplier, amount, fee, guaranteed, resolution
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (seq, idx) DO NOTHING`

func nullable[T comparable](v T) *T {
	var zero T
	if v == zero {
		return nil
	}
	return &v
}

func eventArgs(env betting.Envelope) []any {
	ev := env.Event
	var side, resolution *string
	switch ev.Type {
	case betting.EventMarketResolved:
		resolution = nullable(ev.Resolution.String())
	default:
		side = nullable(ev.Side.String())
	}
	return []any{
		int64(env.Seq), env.Index, string(ev.Type),
		int64(ev.Market), int64(ev.Asset),
		nullable(int64(ev.Bettor)), nullable(int64(ev.BetID)),
		side, nullable(int32(ev.Multiplier)),
		ev.Amount, ev.Fee, ev.Guaranteed, resolution,
	}
}

func (s *EventStore) Publish(ctx context.Context, envs []betting.Envelope) error {
	if len(envs) == 0 {
		return nil
	}
	b := &pgx.Batch{}
	for _, env := range envs {
		b.Queue(insertEvent, eventArgs(env)...)
	}

	br := s.db.SendBatch(ctx, b)
	for i := range envs {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return errors.Wrapf(err, "insert event %d/%d", envs[i].Seq, envs[i].Index)
		}
	}
	return br.Close()
}

func (s *EventStore) Close() error {
	if s.close != nil {
		s.close()
	}
	return nil
}
