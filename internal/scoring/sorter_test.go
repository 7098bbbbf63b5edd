package scoring

import (
	"testing"
	"time"

	"github.com/spacesedan/triberank/internal/models"
)

func TestSortByScoreDescending(t *testing.T) {
	items := []models.ScoreableItem{
		models.SocialPost{ID: "low", PostedAt: testNow},
		models.SocialPost{ID: "high", PostedAt: testNow},
		models.SocialPost{ID: "mid", PostedAt: testNow},
	}
	breakdowns := []models.ScoreBreakdown{
		{ItemID: "low", Total: 0.1},
		{ItemID: "high", Total: 0.9},
		{ItemID: "mid", Total: 0.5},
	}

	ordered := SortByScore(items, breakdowns)
	want := []string{"high", "mid", "low"}
	for i, id := range want {
		if ordered[i].ItemID() != id {
			t.Errorf("position %d = %s, want %s", i, ordered[i].ItemID(), id)
		}
	}
}

func TestSortByScoreTieBreaksNewerFirst(t *testing.T) {
	older := models.SocialPost{ID: "older", PostedAt: testNow.Add(-time.Hour)}
	newer := models.SocialPost{ID: "newer", PostedAt: testNow}

	ordered := SortByScore(
		[]models.ScoreableItem{older, newer},
		[]models.ScoreBreakdown{{ItemID: "older", Total: 0.5}, {ItemID: "newer", Total: 0.5}},
	)

	if ordered[0].ItemID() != "newer" {
		t.Fatalf("tie broke to %s, want newer first", ordered[0].ItemID())
	}
}

func TestSortByScoreStableOnFullTies(t *testing.T) {
	items := []models.ScoreableItem{
		models.SocialPost{ID: "a", PostedAt: testNow},
		models.SocialPost{ID: "b", PostedAt: testNow},
		models.SocialPost{ID: "c", PostedAt: testNow},
	}
	breakdowns := []models.ScoreBreakdown{
		{ItemID: "a", Total: 0.5},
		{ItemID: "b", Total: 0.5},
		{ItemID: "c", Total: 0.5},
	}

	first := SortByScore(items, breakdowns)
	second := SortByScore(items, breakdowns)
	for i := range first {
		if first[i].ItemID() != second[i].ItemID() {
			t.Fatalf("repeat sort reordered equal items at %d", i)
		}
	}
}

func TestSortByScoreEmpty(t *testing.T) {
	if got := SortByScore(nil, nil); len(got) != 0 {
		t.Fatalf("sorting nothing returned %d items", len(got))
	}
}
