package notifications

import (
	"context"
	"fmt"
	"time"

	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/config"
	"github.com/sasha-semenenko/planetarium-api-service/pkg/logger"

	"github.com/IBM/sarama"
)

// Producer publishes reservation events. Injected optionally; the reservation
// flow works without it.
type Producer interface {
	PublishReservationCreated(ctx context.Context, event *ReservationCreatedEvent) error
	Close() error
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
	log      *logger.Logger
}

func NewKafkaProducer(cfg config.KafkaConfig) (Producer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Timeout = 10 * time.Second
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		topic:    cfg.Topic,
		log:      logger.GetDefault(),
	}, nil
}

func (p *kafkaProducer) PublishReservationCreated(ctx context.Context, event *ReservationCreatedEvent) error {
	messageBytes, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal reservation event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.PartitionKey()),
		Value: sarama.ByteEncoder(messageBytes),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte("reservation.created")},
			{Key: []byte("reservation_id"), Value: []byte(event.ReservationID.String())},
			{Key: []byte("created_at"), Value: []byte(event.CreatedAt.Format(time.RFC3339))},
		},
		Timestamp: event.CreatedAt,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send reservation event: %w", err)
	}

	p.log.InfoWithContext(ctx, "Reservation event published", map[string]interface{}{
		"topic":          p.topic,
		"partition":      partition,
		"offset":         offset,
		"reservation_id": event.ReservationID.String(),
	})
	return nil
}

func (p *kafkaProducer) Close() error {
	if p.producer != nil {
		if err := p.producer.Close(); err != nil {
			return fmt.Errorf("failed to close Kafka producer: %w", err)
		}
	}
	return nil
}
