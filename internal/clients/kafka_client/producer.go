package kafka_client

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/spacesedan/triberank/internal/models"
)

var producer *kafka.Producer

func InitProducer(cfg KafkaConfig) error {
	slog.Info("[KafkaClient] Initializing Kafka Producer...")

	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":                     cfg.Broker,
		"security.protocol":                     "PLAINTEXT",
		"api.version.request":                   "true",
		"enable.idempotence":                    true,
		"acks":                                  "all",
		"max.in.flight.requests.per.connection": 1,
		"transactional.id":                      "triberank-producer-1",
	})
	if err != nil {
		return fmt.Errorf("[KafkaClient] Failed to create producer: %w", err)
	}

	if err := p.InitTransactions(context.Background()); err != nil {
		return fmt.Errorf("[KafkaClient] Failed to init transactions: %w", err)
	}

	producer = p
	slog.Info("[KafkaClient] Kafka Producer initialized successfully")
	return nil
}

func CloseProducer() {
	slog.Info("[KafkaClient] Shutting down Kafka producer...")
	if producer != nil {
		if remaining := producer.Flush(5000); remaining > 0 {
			slog.Warn("[KafkaClient] Not all messages were delivered before shutdown",
				slog.Int("remaining", remaining))
		}
		producer.Close()
		slog.Info("[KafkaClient] Kafka producer shut down")
	}
}

// PublishDecisions sends a batch of moderation outcomes to the decisions
// topic in one transaction, keyed by item id so per-item ordering holds.
func PublishDecisions(topic string, notices []models.DecisionNotice) error {
	if len(notices) == 0 {
		return nil
	}

	if err := producer.BeginTransaction(); err != nil {
		return fmt.Errorf("[KafkaClient] failed to begin transaction: %w", err)
	}

	for _, notice := range notices {
		jsonData, err := json.Marshal(notice)
		if err != nil {
			return abortWith(fmt.Errorf("[KafkaClient] failed to marshal decision for %s: %w", notice.Decision.ItemID, err))
		}

		msg := &kafka.Message{
			TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
			Key:            []byte(notice.Decision.ItemID),
			Value:          jsonData,
		}

		for i := 0; i < 3; i++ {
			err = producer.Produce(msg, nil)
			if err == nil {
				break
			}
			slog.Warn("[KafkaClient] Failed to produce message, retrying...",
				slog.Int("attempt", i+1))
		}
		if err != nil {
			return abortWith(fmt.Errorf("[KafkaClient] failed to produce decision for %s: %w", notice.Decision.ItemID, err))
		}
	}

	var commitErr error
	for i := 0; i < 3; i++ {
		commitErr = producer.CommitTransaction(context.Background())
		if commitErr == nil {
			break
		}
		slog.Warn("[KafkaClient] Failed to commit transaction, retrying...",
			slog.Int("attempt", i+1))
	}
	if commitErr != nil {
		return fmt.Errorf("[KafkaClient] failed to commit transaction after 3 retries: %w", commitErr)
	}

	slog.Info("[KafkaClient] Published moderation decisions transactionally",
		slog.String("topic", topic),
		slog.Int("count", len(notices)))
	return nil
}

func abortWith(cause error) error {
	if abortErr := producer.AbortTransaction(context.Background()); abortErr != nil {
		return fmt.Errorf("[KafkaClient] failed to abort transaction: %w (original: %v)", abortErr, cause)
	}
	return cause
}
