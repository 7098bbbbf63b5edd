package interests

import (
	"time"

	"github.com/spacesedan/triberank/internal/models"
)

const (
	likeWeight    = 0.1
	commentWeight = 0.3
	shareWeight   = 0.4
	hideWeight    = -0.2

	viewMaxWeight        = 0.2
	fullAttentionSeconds = 30.0
)

var nowUTC = func() time.Time { return time.Now().UTC() }

// Update applies one interaction to a user's interest profile and returns
// a new profile value; the input is never mutated, so the caller owns
// persistence and concurrency. The interaction's weight is added to every
// category and tag on the item and each result is clamped to [0,1].
// duration only matters for views: 30 seconds counts as full attention.
func Update(profile models.UserInterestProfile, item models.ScoreableItem, interaction models.InteractionType, duration *int) models.UserInterestProfile {
	delta := interactionWeight(interaction, duration)

	updated := models.UserInterestProfile{
		UserID:      profile.UserID,
		Categories:  make(map[string]float64, len(profile.Categories)+len(item.Categories())),
		Tags:        make(map[string]float64, len(profile.Tags)+len(item.Tags())),
		LastUpdated: nowUTC(),
	}
	for k, v := range profile.Categories {
		updated.Categories[k] = v
	}
	for k, v := range profile.Tags {
		updated.Tags[k] = v
	}

	for _, cat := range item.Categories() {
		updated.Categories[cat] = clamp01(updated.Categories[cat] + delta)
	}
	for _, tag := range item.Tags() {
		updated.Tags[tag] = clamp01(updated.Tags[tag] + delta)
	}

	return updated
}

func interactionWeight(interaction models.InteractionType, duration *int) float64 {
	switch interaction {
	case models.InteractionLike:
		return likeWeight
	case models.InteractionComment:
		return commentWeight
	case models.InteractionShare:
		return shareWeight
	case models.InteractionHide:
		return hideWeight
	case models.InteractionView:
		if duration == nil {
			return 0
		}
		w := float64(*duration) / fullAttentionSeconds * viewMaxWeight
		if w > viewMaxWeight {
			w = viewMaxWeight
		}
		if w < 0 {
			w = 0
		}
		return w
	default:
		return 0
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
