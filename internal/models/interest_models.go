package models

import "time"

// UserInterestProfile is a per-user affinity vector over categories and
// tags, every weight clamped to [0,1]. It is only ever mutated through
// interests.Update, which returns a fresh copy.
type UserInterestProfile struct {
	UserID      string             `json:"user_id" dynamodbav:"user_id"`
	Categories  map[string]float64 `json:"categories,omitempty" dynamodbav:"categories,omitempty"`
	Tags        map[string]float64 `json:"tags,omitempty" dynamodbav:"tags,omitempty"`
	LastUpdated time.Time          `json:"last_updated" dynamodbav:"last_updated"`
}

// NewInterestProfile creates the empty profile lazily used for a user's
// first recorded interaction.
func NewInterestProfile(userID string) UserInterestProfile {
	return UserInterestProfile{
		UserID:     userID,
		Categories: make(map[string]float64),
		Tags:       make(map[string]float64),
	}
}

// TribalConnection is a directed affinity edge between two users.
// Read-only input to scoring; no decay policy is applied here.
type TribalConnection struct {
	UserID          string    `json:"user_id"`
	ConnectedUserID string    `json:"connected_user_id"`
	Strength        float64   `json:"strength"`
	LastInteraction time.Time `json:"last_interaction"`
}

type InteractionType string

const (
	InteractionView    InteractionType = "view"
	InteractionLike    InteractionType = "like"
	InteractionComment InteractionType = "comment"
	InteractionShare   InteractionType = "share"
	InteractionHide    InteractionType = "hide"
)

// InteractionEvent is the wire shape of a recorded interaction, consumed
// from the interaction-events topic. It carries enough of the item to
// rebuild the view the interest updater needs.
type InteractionEvent struct {
	EventID         string          `json:"event_id"`
	UserID          string          `json:"user_id"`
	ItemID          string          `json:"item_id"`
	ItemKind        ItemKind        `json:"item_kind"`
	ItemAuthorID    string          `json:"item_author_id"`
	Categories      []string        `json:"categories,omitempty"`
	Tags            []string        `json:"tags,omitempty"`
	Interaction     InteractionType `json:"interaction"`
	DurationSeconds *int            `json:"duration_seconds,omitempty"`
	OccurredAt      time.Time       `json:"occurred_at"`
}

// Item rebuilds a minimal ScoreableItem of the event's kind for the
// interest updater. The switch is exhaustive over ItemKind.
func (e InteractionEvent) Item() ScoreableItem {
	switch e.ItemKind {
	case KindJobListing:
		return JobListing{
			ID:           e.ItemID,
			EmployerID:   e.ItemAuthorID,
			PostedAt:     e.OccurredAt,
			CategoryList: e.Categories,
			TagList:      e.Tags,
		}
	case KindBlogSubmission:
		return BlogSubmission{
			ID:           e.ItemID,
			AuthorID:     e.ItemAuthorID,
			SubmittedAt:  e.OccurredAt,
			CategoryList: e.Categories,
			TagList:      e.Tags,
		}
	default:
		return SocialPost{
			ID:           e.ItemID,
			AuthorID:     e.ItemAuthorID,
			PostedAt:     e.OccurredAt,
			CategoryList: e.Categories,
			TagList:      e.Tags,
		}
	}
}
