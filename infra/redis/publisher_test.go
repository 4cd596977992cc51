package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"

	"bookie/domain/betting"
)

type fakePublisher struct {
	channels []string
	payloads [][]byte
	failAt   int
}

func (f *fakePublisher) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	if f.failAt > 0 && len(f.payloads)+1 == f.failAt {
		return redis.NewIntResult(0, errors.New("connection reset"))
	}
	f.channels = append(f.channels, channel)
	f.payloads = append(f.payloads, message.([]byte))
	return redis.NewIntResult(1, nil)
}

func TestPublish(t *testing.T) {
	f := &fakePublisher{}
	p := &Publisher{r: f, channel: "bookie:events"}

	envs := []betting.Envelope{{Seq: 1}, {Seq: 2}}
	if err := p.Publish(context.Background(), envs); err != nil {
		t.Fatal(err)
	}
	if len(f.payloads) != 2 || f.channels[1] != "bookie:events" {
		t.Fatalf("published %d payloads on %v", len(f.payloads), f.channels)
	}
}

func TestPublishStopsOnError(t *testing.T) {
	f := &fakePublisher{failAt: 2}
	p := &Publisher{r: f, channel: "c"}
	if err := p.Publish(context.Background(), []betting.Envelope{{Seq: 1}, {Seq: 2}, {Seq: 3}}); err == nil {
		t.Fatal("expected error")
	}
	if len(f.payloads) != 1 {
		t.Fatalf("published %d before failing, want 1", len(f.payloads))
	}
}
