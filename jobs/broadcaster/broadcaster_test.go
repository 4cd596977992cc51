package broadcaster

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/IBM/sarama/mocks"
	"go.uber.org/zap"

	"bookie/domain/betting"
	"bookie/infra/metrics"
	exitwal "bookie/infra/wal/exit"
)

type recordingSink struct {
	name string
	err  error
	got  []betting.Envelope
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Publish(_ context.Context, envs []betting.Envelope) error {
	if s.err != nil {
		return s.err
	}
	s.got = append(s.got, envs...)
	return nil
}

func (s *recordingSink) Close() error { return nil }

func newTestOutbox(t *testing.T) *exitwal.Outbox {
	t.Helper()
	o, err := exitwal.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { o.Close() })
	return o
}

func appendEvents(t *testing.T, o *exitwal.Outbox, seq uint64, evs ...betting.Event) {
	t.Helper()
	payloads := make([][]byte, len(evs))
	for i, ev := range evs {
		b, err := json.Marshal(betting.Envelope{Seq: seq, Index: i, Event: ev})
		if err != nil {
			t.Fatal(err)
		}
		payloads[i] = b
	}
	if err := o.Append(seq, payloads, false); err != nil {
		t.Fatal(err)
	}
}

func TestFlushDeliversToEverySink(t *testing.T) {
	o := newTestOutbox(t)
	appendEvents(t, o, 3,
		betting.Event{Type: betting.EventBetPlaced, Market: 1, BetID: 3},
		betting.Event{Type: betting.EventBetMatched, Market: 1, BetID: 3},
	)
	appendEvents(t, o, 4, betting.Event{Type: betting.EventBetCanceled, Market: 2, BetID: 1})

	producer := mocks.NewSyncProducer(t, nil)
	for range 3 {
		producer.ExpectSendMessageAndSucceed()
	}
	rec := &recordingSink{name: "rec"}
	m := metrics.New()

	b := New(o, []Sink{NewSaramaSinkFromProducer(producer, "events"), rec},
		Config{BatchSize: 10}, zap.NewNop(), m)
	defer b.Close()

	n, err := b.Flush(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Fatalf("acked %d, want 3", n)
	}
	if len(rec.got) != 3 || rec.got[2].Seq != 4 || rec.got[1].Index != 1 {
		t.Fatalf("sink got %+v", rec.got)
	}

	// Acked entries stay until a snapshot covers them.
	counts, _ := o.Count()
	if counts[exitwal.StateAcked] != 3 || counts[exitwal.StateNew]+counts[exitwal.StateSent] != 0 {
		t.Fatalf("outbox counts = %v", counts)
	}
	if n, err := b.Flush(context.Background()); err != nil || n != 0 {
		t.Fatalf("second flush acked %d, err %v", n, err)
	}
}

func TestFlushRetriesThenFails(t *testing.T) {
	o := newTestOutbox(t)
	appendEvents(t, o, 1, betting.Event{Type: betting.EventBetPlaced, Market: 1})

	sink := &recordingSink{name: "down", err: errors.New("unavailable")}
	b := New(o, []Sink{sink}, Config{BatchSize: 10, MaxRetries: 2}, zap.NewNop(), nil)

	if _, err := b.Flush(context.Background()); err == nil {
		t.Fatal("expected publish error")
	}
	e, err := o.Get(1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if e.State != exitwal.StateSent || e.Retries != 1 {
		t.Fatalf("after first failure: %+v", e)
	}

	b.Flush(context.Background())
	e, _ = o.Get(1, 0)
	if e.State != exitwal.StateFailed || e.Retries != 2 {
		t.Fatalf("after second failure: %+v", e)
	}

	// FAILED entries are not retried.
	sink.err = nil
	if n, err := b.Flush(context.Background()); err != nil || n != 0 {
		t.Fatalf("flush after give-up: n=%d err=%v", n, err)
	}
}

func TestFlushRecoversAfterTransientError(t *testing.T) {
	o := newTestOutbox(t)
	appendEvents(t, o, 1, betting.Event{Type: betting.EventBetPlaced, Market: 1})

	sink := &recordingSink{name: "flaky", err: errors.New("timeout")}
	b := New(o, []Sink{sink}, Config{BatchSize: 10}, zap.NewNop(), nil)

	b.Flush(context.Background())
	sink.err = nil
	n, err := b.Flush(context.Background())
	if err != nil || n != 1 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if len(sink.got) != 1 {
		t.Fatalf("delivered %d", len(sink.got))
	}
}

func TestMalformedPayloadIsParked(t *testing.T) {
	o := newTestOutbox(t)
	if err := o.Append(1, [][]byte{[]byte("{not json")}, false); err != nil {
		t.Fatal(err)
	}
	appendEvents(t, o, 2, betting.Event{Type: betting.EventBetPlaced, Market: 1})

	sink := &recordingSink{name: "rec"}
	b := New(o, []Sink{sink}, Config{BatchSize: 10}, zap.NewNop(), nil)

	n, err := b.Flush(context.Background())
	if err != nil || n != 1 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	e, _ := o.Get(1, 0)
	if e.State != exitwal.StateFailed {
		t.Fatalf("malformed entry state %v", e.State)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	o := newTestOutbox(t)
	b := New(o, nil, Config{}, zap.NewNop(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := b.Run(ctx); err != nil {
		t.Fatal(err)
	}
}
