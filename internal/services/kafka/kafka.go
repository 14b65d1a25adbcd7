package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iwtcode/cncSimulator/internal/config"
	"github.com/iwtcode/cncSimulator/internal/domain/models"
	"github.com/iwtcode/cncSimulator/internal/interfaces"

	"github.com/segmentio/kafka-go"
)

// messageWriter - часть *kafka.Writer, которую использует продюсер.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducer struct {
	writer messageWriter
	topic  string
}

// NewKafkaProducer создает новый экземпляр продюсера Kafka.
// Ключ сообщения - id станка, поэтому снимки одного станка попадают в одну партицию.
func NewKafkaProducer(cfg *config.AppConfig) (interfaces.SnapshotPublisher, error) {
	if cfg.Kafka.Broker == "" {
		return nil, fmt.Errorf("не задан KAFKA_BROKER")
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Kafka.Broker),
		Topic:        cfg.Kafka.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}
	return newProducer(writer, cfg.Kafka.Topic), nil
}

func newProducer(w messageWriter, topic string) *KafkaProducer {
	return &KafkaProducer{writer: w, topic: topic}
}

func (p *KafkaProducer) Name() string {
	return "kafka:" + p.topic
}

// Publish отправляет снимки одного тика одним батчем
func (p *KafkaProducer) Publish(ctx context.Context, snapshots []models.MachineSnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(snapshots))
	for _, snap := range snapshots {
		value, err := json.Marshal(snap)
		if err != nil {
			return fmt.Errorf("не удалось сериализовать снимок %s: %w", snap.ID, err)
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(snap.ID),
			Value: value,
			Time:  snap.Timestamp,
		})
	}
	return p.writer.WriteMessages(ctx, msgs...)
}

// Close закрывает соединение с Kafka
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
