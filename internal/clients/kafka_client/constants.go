package kafka_client

import "time"

const (
	KAFKA_TOPIC_CONTENT_SUBMISSIONS  = "content-submissions"  // job/blog submissions awaiting vetting
	KAFKA_TOPIC_MODERATION_DECISIONS = "moderation-decisions" // routed outcomes with validator suggestions
	KAFKA_TOPIC_INTERACTION_EVENTS   = "interaction-events"   // view/like/comment/share/hide events from the surfaces
)

const (
	BATCH_SIZE    = 50
	BATCH_TIMEOUT = 5 * time.Second
	MAX_RETRIES   = 5
	RETRY_DELAY   = 2 * time.Second
)
