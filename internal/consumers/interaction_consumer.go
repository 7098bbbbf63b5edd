package consumers

import (
	"context"
	"log/slog"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/spacesedan/triberank/internal/clients"
	"github.com/spacesedan/triberank/internal/clients/kafka_client"
	"github.com/spacesedan/triberank/internal/db"
	"github.com/spacesedan/triberank/internal/interests"
	"github.com/spacesedan/triberank/internal/models"
	"github.com/spacesedan/triberank/internal/utils"
)

// StartInteractionConsumer applies recorded interactions to user interest
// profiles. Valkey deduplicates event ids across redeliveries so a replay
// never double-counts a like. Profiles are created lazily on a user's
// first interaction.
func StartInteractionConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)
	valkey := clients.GetValkeyClient()

	slog.Info("[InteractionConsumer] Listening for messages...")

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[InteractionConsumer] Stopping consumer...")
			return
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var ev models.InteractionEvent
			if err := utils.DeserializeFromJSON(msg.Value, &ev); err != nil {
				continue
			}

			if valkey.IsEventProcessed(ctx, ev.EventID) {
				slog.Debug("[InteractionConsumer] Skipping already-processed event",
					slog.String("event_id", ev.EventID))
				if err := committer.Commit(msg); err != nil {
					slog.Warn("[InteractionConsumer] Failed to commit offset",
						slog.String("error", err.Error()))
				}
				continue
			}

			if err := applyInteraction(ctx, ev); err != nil {
				slog.Error("[InteractionConsumer] Failed to apply interaction",
					slog.String("event_id", ev.EventID),
					slog.String("error", err.Error()))
				continue
			}

			if err := valkey.MarkEventProcessed(ctx, ev.EventID); err != nil {
				slog.Warn("[InteractionConsumer] Failed to mark event processed",
					slog.String("event_id", ev.EventID),
					slog.String("error", err.Error()))
			}
			if err := committer.Commit(msg); err != nil {
				slog.Warn("[InteractionConsumer] Failed to commit offset",
					slog.String("error", err.Error()))
			}
		}
	}
}

func applyInteraction(ctx context.Context, ev models.InteractionEvent) error {
	profile, found, err := db.GetInterestProfile(ctx, ev.UserID)
	if err != nil {
		return err
	}
	if !found {
		profile = models.NewInterestProfile(ev.UserID)
	}

	updated := interests.Update(profile, ev.Item(), ev.Interaction, ev.DurationSeconds)
	if err := db.PutInterestProfile(ctx, updated); err != nil {
		return err
	}

	slog.Debug("[InteractionConsumer] Updated interest profile",
		slog.String("user_id", ev.UserID),
		slog.String("interaction", string(ev.Interaction)),
		slog.Int("categories", len(updated.Categories)))
	return nil
}
