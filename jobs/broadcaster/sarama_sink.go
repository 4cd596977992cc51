package broadcaster

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/IBM/sarama"
	"github.com/cockroachdb/errors"

	"bookie/domain/betting"
)

// SaramaSink publishes events with a sarama SyncProducer, keyed by market.
type SaramaSink struct {
	producer sarama.SyncProducer
	topic    string
}

func NewSaramaSink(brokers []string, topic string) (*SaramaSink, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "sarama producer")
	}
	return NewSaramaSinkFromProducer(producer, topic), nil
}

func NewSaramaSinkFromProducer(p sarama.SyncProducer, topic string) *SaramaSink {
	return &SaramaSink{producer: p, topic: topic}
}

func (s *SaramaSink) Name() string { return "sarama" }

func (s *SaramaSink) Publish(_ context.Context, envs []betting.Envelope) error {
	msgs := make([]*sarama.ProducerMessage, 0, len(envs))
	for _, env := range envs {
		value, err := json.Marshal(env)
		if err != nil {
			return errors.Wrapf(err, "encode event %d/%d", env.Seq, env.Index)
		}
		msgs = append(msgs, &sarama.ProducerMessage{
			Topic: s.topic,
			Key:   sarama.StringEncoder(strconv.FormatUint(uint64(env.Event.Market), 10)),
			Value: sarama.ByteEncoder(value),
		})
	}
	return s.producer.SendMessages(msgs)
}

func (s *SaramaSink) Close() error {
	return s.producer.Close()
}
