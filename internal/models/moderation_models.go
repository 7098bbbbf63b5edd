package models

import "time"

// SafetyFlag is an enumerated reason code produced by the safety validator.
// Each flag carries a fixed score penalty configured in the active rule set.
type SafetyFlag string

const (
	FlagSpamKeywords     SafetyFlag = "spam_keywords"
	FlagUnsafeLinks      SafetyFlag = "unsafe_links"
	FlagShortContent     SafetyFlag = "short_content"
	FlagClickbait        SafetyFlag = "clickbait_headline"
	FlagAdultContent     SafetyFlag = "adult_content"
	FlagSensitiveInfo    SafetyFlag = "sensitive_info_request"
	FlagPaymentRequest   SafetyFlag = "payment_request"
	FlagSuspiciousSalary SafetyFlag = "suspicious_salary"
)

type ModerationStatus string

const (
	StatusApproved ModerationStatus = "approved"
	StatusPending  ModerationStatus = "pending"
	StatusRejected ModerationStatus = "rejected"
)

// ModerationDecision records the routing outcome for one submission.
// DecidedBy is "system" for automated decisions, otherwise a moderator id.
type ModerationDecision struct {
	ID        string           `json:"id" dynamodbav:"id"`
	ItemID    string           `json:"item_id" dynamodbav:"item_id"`
	Status    ModerationStatus `json:"status" dynamodbav:"status"`
	Score     int              `json:"score" dynamodbav:"score"`
	Flags     []SafetyFlag     `json:"flags,omitempty" dynamodbav:"flags,omitempty"`
	Reasons   []string         `json:"reasons,omitempty" dynamodbav:"reasons,omitempty"`
	DecidedAt time.Time        `json:"decided_at" dynamodbav:"decided_at"`
	DecidedBy string           `json:"decided_by" dynamodbav:"decided_by"`
}

// ModerationOverride is an explicit manual decision that replaces a
// computed one. Once an override exists the router never re-derives.
type ModerationOverride struct {
	Status      ModerationStatus `json:"status"`
	ModeratorID string           `json:"moderator_id"`
	Note        string           `json:"note,omitempty"`
}

// SubmissionEvent is the wire shape of a job/blog submission awaiting
// vetting, consumed from the content-submissions topic.
type SubmissionEvent struct {
	ItemID           string    `json:"item_id"`
	Kind             ItemKind  `json:"kind"`
	AuthorID         string    `json:"author_id"`
	Text             string    `json:"text"`
	Links            []string  `json:"links,omitempty"`
	AuthorReputation int       `json:"author_reputation"`
	FirstSubmission  bool      `json:"first_submission"`
	SubmittedAt      time.Time `json:"submitted_at"`
}

// DecisionNotice is published back to the decision topic so the submitting
// surface can show the outcome and any validator suggestions.
type DecisionNotice struct {
	Decision    ModerationDecision `json:"decision"`
	Suggestions []string           `json:"suggestions,omitempty"`
}
