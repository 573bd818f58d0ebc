package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/avGenie/go-bookstore-inventory/internal/app/entity"
	"github.com/avGenie/go-bookstore-inventory/internal/app/converter"
	jsoniter "github.com/json-iterator/go"
	"github.com/segmentio/kafka-go"
)

const (
	writeTimeout = 3 * time.Second
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: writeTimeout,
		},
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, events entity.Events) error {
	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		payload, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(converter.ConvertEventToMessage(event))
		if err != nil {
			return fmt.Errorf("error while marshalling %s event: %w", event.Type, err)
		}

		messages = append(messages, kafka.Message{
			Key:   []byte(event.Key()),
			Value: payload,
			Time:  event.OccurredAt,
		})
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("error while writing events to kafka: %w", err)
	}

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher discards events; used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, entity.Events) error {
	return nil
}

func (NopPublisher) Close() error {
	return nil
}
