package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/spacesedan/triberank/internal/clients/kafka_client"
	"github.com/spacesedan/triberank/internal/db"
	"github.com/spacesedan/triberank/internal/models"
	"github.com/spacesedan/triberank/internal/moderation"
	"github.com/spacesedan/triberank/internal/safety"
	"github.com/spacesedan/triberank/internal/sentiment"
	"github.com/spacesedan/triberank/internal/utils"
)

var (
	decisionBuffer      = utils.NewBatchBuffer[models.DecisionNotice]()
	submissionValidator = safety.NewValidator(safety.DefaultRules())
)

// StartSubmissionConsumer vets job and blog submissions: safety validation,
// threshold routing, batched persistence, and a decision notice back on the
// decisions topic. Offsets commit only after the decision batch lands.
func StartSubmissionConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	slog.Info("[SubmissionConsumer] Listening for messages...")

	ticker := time.NewTicker(utils.BATCH_TIMEOUT)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[SubmissionConsumer] Stopping consumer...")
			flushDecisions(ctx, committer)
			return
		case <-ticker.C:
			flushDecisions(ctx, committer)
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var ev models.SubmissionEvent
			if err := utils.DeserializeFromJSON(msg.Value, &ev); err != nil {
				continue
			}

			notice := vetSubmission(ev)
			utils.TrackMessage(ev.ItemID, msg)
			decisionBuffer.Add(notice)

			if decisionBuffer.Size() >= utils.BATCH_SIZE {
				flushDecisions(ctx, committer)
			}
		}
	}
}

// vetSubmission runs one submission through the validator and the router.
// Blog bodies arrive as markdown, so links are pulled out of the body and
// the scans run on rendered prose.
func vetSubmission(ev models.SubmissionEvent) models.DecisionNotice {
	text := ev.Text
	links := ev.Links
	if ev.Kind == models.KindBlogSubmission {
		links = append(links, sentiment.ExtractLinks(ev.Text)...)
		text = sentiment.PlainText(ev.Text)
	}

	flags, score, suggestions := submissionValidator.Validate(text, links)

	decision := moderation.Route(score, flags, ev.AuthorReputation, ev.FirstSubmission, moderation.ThresholdsFor(ev.Kind))
	decision.ItemID = ev.ItemID

	slog.Info("[SubmissionConsumer] Routed submission",
		slog.String("item_id", ev.ItemID),
		slog.String("kind", string(ev.Kind)),
		slog.String("status", string(decision.Status)),
		slog.Int("score", score),
		slog.Int("flags", len(flags)))

	return models.DecisionNotice{Decision: decision, Suggestions: suggestions}
}

func flushDecisions(ctx context.Context, committer *kafka_client.KafkaCommitHandler) {
	batch := decisionBuffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	decisions := make([]models.ModerationDecision, 0, len(batch))
	for _, notice := range batch {
		decisions = append(decisions, notice.Decision)
	}

	var insertErr error
	for i := 0; i < 3; i++ {
		insertErr = db.BatchInsertDecisions(ctx, decisions)
		if insertErr == nil {
			break
		}
		slog.Error("[SubmissionConsumer] Failed to write decisions to DB",
			slog.String("error", insertErr.Error()),
			slog.Int("attempt", i+1))
	}

	if err := kafka_client.PublishDecisions(kafka_client.KAFKA_TOPIC_MODERATION_DECISIONS, batch); err != nil {
		slog.Error("[SubmissionConsumer] Failed to publish decision notices",
			slog.String("error", err.Error()))
	}

	for _, notice := range batch {
		msg, found := utils.GetMessageForItem(notice.Decision.ItemID)
		if found {
			if err := committer.Commit(msg); err != nil {
				slog.Warn("[SubmissionConsumer] Failed to commit offset",
					slog.String("error", err.Error()))
			}
		}
	}
}
