package scoring

import (
	"math"
	"time"

	"github.com/spacesedan/triberank/internal/models"
	"github.com/spacesedan/triberank/internal/safety"
	"github.com/spacesedan/triberank/internal/sentiment"
)

// Factor names referenced by weight profiles.
const (
	FactorRecency      = "recency"
	FactorEngagement   = "engagement"
	FactorAffinity     = "affinity"
	FactorInterest     = "interest"
	FactorQuality      = "quality"
	FactorVerification = "verification"
	FactorHistory      = "history"
	FactorJitter       = "jitter"
)

// Boost names recognized by the engine.
const (
	BoostFeatured = "featured"
	BoostVerified = "verified"
)

const (
	maxFeedAgeHours  = 168.0 // one week
	jobAgeDivisor    = 16.8
	affinityFloor    = 0.1
	interestNeutral  = 0.3
	qualityBase      = 8.0
	qualityFloor     = 1.0
	blogToneHalfStep = 0.5 // max tone adjustment on the 10 scale
)

// BatchStats holds the per-batch engagement maxima used for normalization.
// Maxima default to 1 so an empty or all-zero batch never divides by zero.
type BatchStats struct {
	MaxLikes    int
	MaxComments int
	MaxShares   int
}

func collectBatchStats(items []models.ScoreableItem) BatchStats {
	stats := BatchStats{MaxLikes: 1, MaxComments: 1, MaxShares: 1}
	for _, item := range items {
		c := item.Counters()
		if c.Likes > stats.MaxLikes {
			stats.MaxLikes = c.Likes
		}
		if c.Comments > stats.MaxComments {
			stats.MaxComments = c.Comments
		}
		if c.Shares > stats.MaxShares {
			stats.MaxShares = c.Shares
		}
	}
	return stats
}

// FactorContext bundles everything a factor function may read. All fields
// are immutable for the duration of one batch.
type FactorContext struct {
	ViewerID    string
	Connections map[string]models.TribalConnection
	Interests   *models.UserInterestProfile
	AuthorStats map[string]models.AuthorStats
	Batch       BatchStats
	Now         time.Time
	Rand        RandomSource
	Validator   *safety.Validator
}

// FactorFunc computes one normalized signal in [0,1] from an item and its
// context. The engine rescales to the profile's convention.
type FactorFunc func(item models.ScoreableItem, fc *FactorContext) float64

// Library returns the full factor registry keyed by factor name.
func Library() map[string]FactorFunc {
	return map[string]FactorFunc{
		FactorRecency:      recencyFactor,
		FactorEngagement:   engagementFactor,
		FactorAffinity:     affinityFactor,
		FactorInterest:     interestFactor,
		FactorQuality:      qualityFactor,
		FactorVerification: verificationFactor,
		FactorHistory:      historyFactor,
		FactorJitter:       jitterFactor,
	}
}

// recencyFactor decays linearly with age. Feed content hits zero at one
// week; job listings use the 0-10 vetting curve with a floor of 1 so a
// stale listing is dampened, never erased.
func recencyFactor(item models.ScoreableItem, fc *FactorContext) float64 {
	ageHours := fc.Now.Sub(item.Created()).Hours()
	if ageHours < 0 {
		ageHours = 0
	}

	switch item.Kind() {
	case models.KindJobListing:
		v := 10 - ageHours/jobAgeDivisor
		if v < 1 {
			v = 1
		}
		if v > 10 {
			v = 10
		}
		return v / 10
	default:
		v := 1 - ageHours/maxFeedAgeHours
		if v < 0 {
			v = 0
		}
		return v
	}
}

// engagementFactor normalizes against the batch maxima for feed content and
// uses the absolute capped formula for job listings.
func engagementFactor(item models.ScoreableItem, fc *FactorContext) float64 {
	c := item.Counters()

	switch item.Kind() {
	case models.KindJobListing:
		v := float64(c.Clicks+2*c.Saves+3*c.Shares+5*c.Applications) / 20
		if v > 10 {
			v = 10
		}
		return v / 10
	default:
		comments := float64(c.Comments) / float64(max(fc.Batch.MaxComments, 1))
		shares := float64(c.Shares) / float64(max(fc.Batch.MaxShares, 1))
		likes := float64(c.Likes) / float64(max(fc.Batch.MaxLikes, 1))
		return 0.5*comments + 0.3*shares + 0.2*likes
	}
}

// affinityFactor scores tribal ties: own content maxes out, connected
// authors score their edge strength, strangers get a discoverability floor.
func affinityFactor(item models.ScoreableItem, fc *FactorContext) float64 {
	if fc.ViewerID != "" && item.Author() == fc.ViewerID {
		return 1.0
	}
	if conn, ok := fc.Connections[item.Author()]; ok {
		s := conn.Strength
		if s < affinityFloor {
			s = affinityFloor
		}
		if s > 1 {
			s = 1
		}
		return s
	}
	return affinityFloor
}

// interestFactor averages the viewer's matched category and tag weights.
// No matches returns a neutral constant so unseen categories are not
// suppressed entirely.
func interestFactor(item models.ScoreableItem, fc *FactorContext) float64 {
	if fc.Interests == nil {
		return interestNeutral
	}

	var sum float64
	var matched int
	for _, cat := range item.Categories() {
		if w, ok := fc.Interests.Categories[cat]; ok {
			sum += w
			matched++
		}
	}
	for _, tag := range item.Tags() {
		if w, ok := fc.Interests.Tags[tag]; ok {
			sum += w
			matched++
		}
	}

	if matched == 0 {
		return interestNeutral
	}
	return sum / float64(matched)
}

// qualityFactor starts from a full 8/10 and deducts the safety penalty for
// each matched flag, floored at 1. Blog submissions additionally get a small
// lexicon tone adjustment, bounded to half a point either way.
func qualityFactor(item models.ScoreableItem, fc *FactorContext) float64 {
	v := qualityBase

	if fc.Validator != nil {
		var links []string
		if blog, ok := item.(models.BlogSubmission); ok {
			links = blog.Backlinks
		}
		flags, _, _ := fc.Validator.Validate(item.Text(), links)
		for _, flag := range flags {
			v -= float64(fc.Validator.Penalty(flag)) / 10
		}
	}

	if item.Kind() == models.KindBlogSubmission {
		compound, _ := sentiment.Tone(item.Text())
		v += compound * blogToneHalfStep
	}

	if v < qualityFloor {
		v = qualityFloor
	}
	if v > 10 {
		v = 10
	}
	return v / 10
}

// verificationFactor sums independently checked trust sub-scores, each
// capped, total capped at 10. Only job listings carry the inputs; other
// kinds fall back to the author's verified flag alone.
func verificationFactor(item models.ScoreableItem, fc *FactorContext) float64 {
	job, ok := item.(models.JobListing)
	if !ok {
		if post, ok := item.(models.SocialPost); ok && post.AuthorVerified {
			return 0.5
		}
		return 0
	}

	var v float64
	if emailMatchesDomain(job.ContactEmail, job.Website) {
		v += 3
	}
	if validPhone(job.Phone) {
		v += 2
	}
	if validSocialProfileURL(job.SocialProfileURL) {
		v += 1.5
	}
	if job.EmployerVerified {
		v += 2
	}
	if job.ProfileComplete {
		v += 1.5
	}

	if v > 10 {
		v = 10
	}
	return v / 10
}

// historyFactor rewards an established, well-rated track record with a
// diminishing volume bonus and subtracts open reports, never below zero.
func historyFactor(item models.ScoreableItem, fc *FactorContext) float64 {
	stats, ok := fc.AuthorStats[item.Author()]
	if !ok {
		// Unknown authors get a neutral midpoint rather than zero.
		return 0.5
	}

	volume := 3 * (1 - math.Exp(-float64(stats.Submissions)/10))
	rating := 5 * clamp01(stats.PositiveRatio)
	penalty := 1.5 * float64(stats.OpenReports)

	v := 2 + volume + rating - penalty
	if v < 0 {
		v = 0
	}
	if v > 10 {
		v = 10
	}
	return v / 10
}

// jitterFactor injects bounded randomness for feed diversity. The source
// is supplied by the caller so tests stay deterministic.
func jitterFactor(_ models.ScoreableItem, fc *FactorContext) float64 {
	if fc.Rand == nil {
		return 0
	}
	return fc.Rand.Float64()
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
