package redis

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"bookie/domain/betting"
)

type publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Connect opens a client and checks it with PING.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrapf(err, "redis ping %s", addr)
	}
	return rdb, nil
}

// Publisher fans settlement events out over Redis pub/sub for live
// subscribers. Delivery is best effort on Redis' side; the outbox retries
// the batch if any publish fails.
type Publisher struct {
	r       publisher
	channel string
	closer  func() error
}

func NewPublisher(client *redis.Client, channel string) *Publisher {
	return &Publisher{r: client, channel: channel, closer: client.Close}
}

func (p *Publisher) Name() string { return "redis" }

func (p *Publisher) Publish(ctx context.Context, envs []betting.Envelope) error {
	for _, env := range envs {
		payload, err := json.Marshal(env)
		if err != nil {
			return errors.Wrapf(err, "encode event %d/%d", env.Seq, env.Index)
		}
		if err := p.r.Publish(ctx, p.channel, payload).Err(); err != nil {
			return errors.Wrapf(err, "redis publish to %s", p.channel)
		}
	}
	return nil
}

func (p *Publisher) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer()
}
