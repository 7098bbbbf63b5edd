package interests

import (
	"math"
	"testing"
	"time"

	"github.com/spacesedan/triberank/internal/models"
)

var testUpdatedAt = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func freezeNow(t *testing.T) {
	t.Helper()
	prev := nowUTC
	nowUTC = func() time.Time { return testUpdatedAt }
	t.Cleanup(func() { nowUTC = prev })
}

func taggedPost(categories, tags []string) models.SocialPost {
	return models.SocialPost{
		ID:           "post-1",
		AuthorID:     "author-1",
		PostedAt:     testUpdatedAt.Add(-time.Hour),
		CategoryList: categories,
		TagList:      tags,
	}
}

func intPtr(v int) *int { return &v }

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestUpdateInteractionWeights(t *testing.T) {
	freezeNow(t)
	item := taggedPost([]string{"golang"}, nil)

	tests := []struct {
		name        string
		interaction models.InteractionType
		duration    *int
		start       float64
		want        float64
	}{
		{"like adds 0.1", models.InteractionLike, nil, 0.5, 0.6},
		{"comment adds 0.3", models.InteractionComment, nil, 0.5, 0.8},
		{"share adds 0.4", models.InteractionShare, nil, 0.5, 0.9},
		{"hide subtracts 0.2", models.InteractionHide, nil, 0.5, 0.3},
		{"half attention view adds 0.1", models.InteractionView, intPtr(15), 0.5, 0.6},
		{"long view caps at 0.2", models.InteractionView, intPtr(120), 0.5, 0.7},
		{"view without duration is neutral", models.InteractionView, nil, 0.5, 0.5},
		{"negative duration is neutral", models.InteractionView, intPtr(-10), 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := models.NewInterestProfile("user-1")
			profile.Categories["golang"] = tt.start

			updated := Update(profile, item, tt.interaction, tt.duration)
			if got := updated.Categories["golang"]; !almostEqual(got, tt.want) {
				t.Errorf("golang weight = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateClampsToUnitInterval(t *testing.T) {
	freezeNow(t)
	item := taggedPost([]string{"golang"}, []string{"distributed"})

	profile := models.NewInterestProfile("user-1")
	profile.Categories["golang"] = 0.95
	profile.Tags["distributed"] = 0.1

	liked := Update(profile, item, models.InteractionLike, nil)
	if got := liked.Categories["golang"]; got != 1.0 {
		t.Errorf("like on 0.95 = %v, want clamped to exactly 1.0", got)
	}

	hidden := Update(profile, item, models.InteractionHide, nil)
	if got := hidden.Tags["distributed"]; got != 0 {
		t.Errorf("hide on 0.1 = %v, want clamped to 0", got)
	}
}

func TestUpdateTouchesEveryCategoryAndTag(t *testing.T) {
	freezeNow(t)
	item := taggedPost([]string{"golang", "backend"}, []string{"kafka", "dynamodb"})

	updated := Update(models.NewInterestProfile("user-1"), item, models.InteractionComment, nil)

	for _, cat := range item.Categories() {
		if got := updated.Categories[cat]; !almostEqual(got, 0.3) {
			t.Errorf("category %s = %v, want 0.3", cat, got)
		}
	}
	for _, tag := range item.Tags() {
		if got := updated.Tags[tag]; !almostEqual(got, 0.3) {
			t.Errorf("tag %s = %v, want 0.3", tag, got)
		}
	}
	if !updated.LastUpdated.Equal(testUpdatedAt) {
		t.Errorf("LastUpdated = %v, want %v", updated.LastUpdated, testUpdatedAt)
	}
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	freezeNow(t)
	item := taggedPost([]string{"golang"}, []string{"kafka"})

	profile := models.NewInterestProfile("user-1")
	profile.Categories["golang"] = 0.4
	profile.Tags["kafka"] = 0.4
	profile.Categories["music"] = 0.7

	updated := Update(profile, item, models.InteractionShare, nil)

	if profile.Categories["golang"] != 0.4 || profile.Tags["kafka"] != 0.4 {
		t.Errorf("input profile was mutated: %+v", profile)
	}
	if got := updated.Categories["music"]; got != 0.7 {
		t.Errorf("untouched category changed: %v", got)
	}
	if !almostEqual(updated.Categories["golang"], 0.8) {
		t.Errorf("golang = %v, want 0.8", updated.Categories["golang"])
	}
}

func TestUpdateUnknownInteractionIsNeutral(t *testing.T) {
	freezeNow(t)
	item := taggedPost([]string{"golang"}, nil)

	profile := models.NewInterestProfile("user-1")
	profile.Categories["golang"] = 0.5

	updated := Update(profile, item, models.InteractionType("bookmark"), nil)
	if got := updated.Categories["golang"]; got != 0.5 {
		t.Errorf("unknown interaction moved weight to %v", got)
	}
}
