package scoring

import (
	"sort"

	"github.com/spacesedan/triberank/internal/models"
)

// SortByScore orders items by descending total score. Ties break by newer
// createdAt first, then by item id, and the sort is stable, so identical
// inputs always produce identical orderings. Items without a breakdown
// sort last with score zero.
func SortByScore(items []models.ScoreableItem, breakdowns []models.ScoreBreakdown) []models.ScoreableItem {
	scores := make(map[string]float64, len(breakdowns))
	for _, bd := range breakdowns {
		scores[bd.ItemID] = bd.Total
	}

	ordered := make([]models.ScoreableItem, len(items))
	copy(ordered, items)

	sort.SliceStable(ordered, func(i, j int) bool {
		si, sj := scores[ordered[i].ItemID()], scores[ordered[j].ItemID()]
		if si != sj {
			return si > sj
		}
		ti, tj := ordered[i].Created(), ordered[j].Created()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return ordered[i].ItemID() < ordered[j].ItemID()
	})

	return ordered
}
