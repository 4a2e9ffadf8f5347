package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sasha-semenenko/planetarium-api-service/internal/shared/config"
	"github.com/sasha-semenenko/planetarium-api-service/pkg/logger"

	"github.com/IBM/sarama"
)

// Consumer drains reservation events and records them. Confirmation delivery
// (email, push) hangs off processEvent.
type Consumer interface {
	Start(ctx context.Context) error
	Stop() error
}

type kafkaConsumer struct {
	consumerGroup sarama.ConsumerGroup
	topics        []string
	log           *logger.Logger
	cancel        context.CancelFunc
}

func NewKafkaConsumer(cfg config.KafkaConfig) (Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = 30 * time.Second
	saramaConfig.Consumer.Group.Heartbeat.Interval = 3 * time.Second
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second

	consumerGroup, err := sarama.NewConsumerGroup(cfg.Brokers, cfg.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &kafkaConsumer{
		consumerGroup: consumerGroup,
		topics:        []string{cfg.Topic},
		log:           logger.GetDefault(),
	}, nil
}

func (c *kafkaConsumer) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		for err := range c.consumerGroup.Errors() {
			c.log.ErrorWithContext(ctx, "Consumer group error", err, nil)
		}
	}()

	go func() {
		handler := &eventHandler{log: c.log}
		for {
			select {
			case <-ctx.Done():
				return
			default:
				if err := c.consumerGroup.Consume(ctx, c.topics, handler); err != nil {
					c.log.ErrorWithContext(ctx, "Error consuming reservation events", err, nil)
					time.Sleep(time.Second)
				}
			}
		}
	}()

	return nil
}

func (c *kafkaConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	if err := c.consumerGroup.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	return nil
}

type eventHandler struct {
	log *logger.Logger
}

func (h *eventHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *eventHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *eventHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message := <-claim.Messages():
			if message == nil {
				return nil
			}
			if err := h.processEvent(session.Context(), message); err != nil {
				h.log.ErrorWithContext(session.Context(), "Failed to process reservation event", err, map[string]interface{}{
					"topic":     message.Topic,
					"partition": message.Partition,
					"offset":    message.Offset,
				})
			} else {
				session.MarkMessage(message, "")
			}
		case <-session.Context().Done():
			return nil
		}
	}
}

func (h *eventHandler) processEvent(ctx context.Context, message *sarama.ConsumerMessage) error {
	var event ReservationCreatedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal reservation event: %w", err)
	}

	h.log.InfoWithContext(ctx, "Reservation confirmation processed", map[string]interface{}{
		"reservation_id": event.ReservationID.String(),
		"user_email":     event.UserEmail,
		"ticket_count":   len(event.Tickets),
	})
	return nil
}
