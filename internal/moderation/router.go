package moderation

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spacesedan/triberank/internal/models"
)

// SystemActor is the DecidedBy value for automated decisions.
const SystemActor = "system"

// ThresholdTable is the configurable routing table for one item variant.
// Scores are on the 0-100 validation scale; vetting-engine scores on the
// 0-10 scale are multiplied by 10 at the call boundary. RejectBelow is a
// hard floor applied before anything else, independent of reputation.
type ThresholdTable struct {
	ApproveAt        int  `json:"approve_at"`
	QueueAt          int  `json:"queue_at"`
	RejectBelow      int  `json:"reject_below"`
	MinReputation    int  `json:"min_reputation"`
	AutoApproveFirst bool `json:"auto_approve_first"`
}

// ContentThresholds is the feed/blog table: auto-approve only trusted
// repeat authors at 80+, queue 60-79, hard-reject below 50.
func ContentThresholds() ThresholdTable {
	return ThresholdTable{
		ApproveAt:        80,
		QueueAt:          60,
		RejectBelow:      50,
		MinReputation:    75,
		AutoApproveFirst: false,
	}
}

// JobThresholds is the job-vetting table: approve 80+, queue 50-79,
// reject below 50, with no reputation gate. The two tables are kept
// independently configurable on purpose; they were never reconciled
// upstream and product owns the difference.
func JobThresholds() ThresholdTable {
	return ThresholdTable{
		ApproveAt:        80,
		QueueAt:          50,
		RejectBelow:      50,
		MinReputation:    0,
		AutoApproveFirst: true,
	}
}

// ThresholdsFor picks the built-in table for an item kind.
func ThresholdsFor(kind models.ItemKind) ThresholdTable {
	if kind == models.KindJobListing {
		return JobThresholds()
	}
	return ContentThresholds()
}

var nowUTC = func() time.Time { return time.Now().UTC() }

// Route maps a validation score, flags and actor standing to a decision.
// It is a pure function of its inputs plus the table; callers must treat
// rejected as "do not publish" and pending as a manual-queue entry.
func Route(score int, flags []models.SafetyFlag, reputation int, firstSubmission bool, table ThresholdTable) models.ModerationDecision {
	decision := models.ModerationDecision{
		ID:        uuid.NewString(),
		Score:     score,
		Flags:     flags,
		DecidedAt: nowUTC(),
		DecidedBy: SystemActor,
	}

	switch {
	case score < table.RejectBelow:
		decision.Status = models.StatusRejected
		decision.Reasons = append(decision.Reasons, fmt.Sprintf("score %d below hard floor %d", score, table.RejectBelow))
	case score >= table.ApproveAt && reputation >= table.MinReputation && (table.AutoApproveFirst || !firstSubmission):
		decision.Status = models.StatusApproved
		decision.Reasons = append(decision.Reasons, fmt.Sprintf("score %d cleared auto-approval at %d", score, table.ApproveAt))
	case score >= table.QueueAt:
		decision.Status = models.StatusPending
		decision.Reasons = append(decision.Reasons, "queued for manual review")
	default:
		decision.Status = models.StatusRejected
		decision.Reasons = append(decision.Reasons, fmt.Sprintf("score %d below review threshold %d", score, table.QueueAt))
	}

	for _, flag := range flags {
		decision.Reasons = append(decision.Reasons, string(flag))
	}

	return decision
}

// ApplyOverride replaces a computed decision with a moderator's explicit
// one. The computed status is never re-derived once an override exists;
// the original decision id is kept so the audit trail stays linked.
func ApplyOverride(decision models.ModerationDecision, override models.ModerationOverride) models.ModerationDecision {
	decision.Status = override.Status
	decision.DecidedBy = override.ModeratorID
	decision.DecidedAt = nowUTC()
	if override.Note != "" {
		decision.Reasons = append(decision.Reasons, "override: "+override.Note)
	}
	return decision
}
