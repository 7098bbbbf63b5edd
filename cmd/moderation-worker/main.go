package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/spacesedan/triberank/config"
	"github.com/spacesedan/triberank/internal/clients/kafka_client"
	"github.com/spacesedan/triberank/internal/consumers"
	"github.com/spacesedan/triberank/internal/db"
	"github.com/spacesedan/triberank/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db.InitDynamoDB()

	cfg := kafka_client.GetKafkaConfig()
	for {
		err := kafka_client.InitProducer(cfg)
		if err == nil {
			break
		}

		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer kafka_client.CloseProducer()

	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_CONTENT_SUBMISSIONS, consumers.StartSubmissionConsumer)

	if err := kafka_client.StartConsumer(ctx, cfg); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}
