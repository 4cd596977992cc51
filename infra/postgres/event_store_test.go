package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"bookie/domain/betting"
)

type fakeResults struct {
	n, failAt int
	closed    bool
}

func (r *fakeResults) Exec() (pgconn.CommandTag, error) {
	r.n++
	if r.n == r.failAt {
		return pgconn.CommandTag{}, errors.New("constraint violation")
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func (r *fakeResults) Query() (pgx.Rows, error) { return nil, nil }
func (r *fakeResults) QueryRow() pgx.Row        { return nil }
func (r *fakeResults) Close() error             { r.closed = true; return nil }

type fakeSender struct {
	batch   *pgx.Batch
	results *fakeResults
}

func (f *fakeSender) SendBatch(_ context.Context, b *pgx.Batch) pgx.BatchResults {
	f.batch = b
	return f.results
}

func TestPublishQueuesOneInsertPerEvent(t *testing.T) {
	f := &fakeSender{results: &fakeResults{}}
	s := &EventStore{db: f}

	envs := []betting.Envelope{
		{Seq: 3, Index: 0, Event: betting.Event{Type: betting.EventBetMatched, Market: 1, Bettor: 5, BetID: 3, Side: betting.Lay, Multiplier: 30000, Amount: 200}},
		{Seq: 4, Index: 0, Event: betting.Event{Type: betting.EventMarketResolved, Market: 1, Resolution: betting.Cancel, Amount: 300}},
	}
	if err := s.Publish(context.Background(), envs); err != nil {
		t.Fatal(err)
	}
	if f.batch.Len() != 2 || !f.results.closed {
		t.Fatalf("batch len %d closed %v", f.batch.Len(), f.results.closed)
	}

	args := f.batch.QueuedQueries[0].Arguments
	if side := args[7].(*string); side == nil || *side != "lay" {
		t.Fatalf("side arg = %v", args[7])
	}
	resolved := f.batch.QueuedQueries[1].Arguments
	if resolved[5].(*int64) != nil || *resolved[12].(*string) != "cancel" {
		t.Fatalf("resolution args = %v", resolved)
	}
}

func TestPublishReportsFailedInsert(t *testing.T) {
	f := &fakeSender{results: &fakeResults{failAt: 2}}
	s := &EventStore{db: f}
	err := s.Publish(context.Background(), []betting.Envelope{{Seq: 1}, {Seq: 2}})
	if err == nil || !f.results.closed {
		t.Fatalf("err = %v, closed = %v", err, f.results.closed)
	}
}
