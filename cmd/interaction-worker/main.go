package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spacesedan/triberank/config"
	"github.com/spacesedan/triberank/internal/clients"
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
	clients.InitValkey()
	defer clients.CloseValkey()

	cfg := kafka_client.GetKafkaConfig()
	cfg.Topic = kafka_client.KAFKA_TOPIC_INTERACTION_EVENTS

	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_INTERACTION_EVENTS, consumers.StartInteractionConsumer)

	if err := kafka_client.StartConsumer(ctx, cfg); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}
