package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/segmentio/kafka-go"

	"bookie/domain/betting"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes settlement events with segmentio/kafka-go. Events
// are keyed by market so one market's events stay in one partition.
type Producer struct {
	writer messageWriter
}

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (p *Producer) Name() string { return "kafka-go" }

func (p *Producer) Publish(ctx context.Context, envs []betting.Envelope) error {
	msgs := make([]kafka.Message, 0, len(envs))
	for _, env := range envs {
		value, err := json.Marshal(env)
		if err != nil {
			return errors.Wrapf(err, "encode event %d/%d", env.Seq, env.Index)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(strconv.FormatUint(uint64(env.Event.Market), 10)),
			Value: value,
		})
	}
	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return errors.Wrap(err, "kafka write")
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
