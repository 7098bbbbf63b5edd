package scoring

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spacesedan/triberank/internal/models"
	"github.com/spacesedan/triberank/internal/safety"
)

// RandomSource abstracts the jitter source so scoring runs are reproducible
// under test. Production wiring uses NewSeededSource.
type RandomSource interface {
	Float64() float64
}

type prngSource struct{ r *rand.Rand }

func (s prngSource) Float64() float64 { return s.r.Float64() }

// NewSeededSource returns a PRNG-backed jitter source.
func NewSeededSource(seed int64) RandomSource {
	return prngSource{r: rand.New(rand.NewSource(seed))}
}

// Context bundles the read-only collaborator state for one scoring pass:
// the acting user, their connection edges keyed by connected user id, their
// interest profile, and author track records keyed by author id.
type Context struct {
	ViewerID    string
	Connections map[string]models.TribalConnection
	Interests   *models.UserInterestProfile
	AuthorStats map[string]models.AuthorStats
}

// Engine combines factor outputs with a weight profile into bounded,
// auditable scores. It holds no per-batch state; ScoreBatch is safe to call
// from any number of goroutines.
type Engine struct {
	factors   map[string]FactorFunc
	rand      RandomSource
	validator *safety.Validator
}

var nowUTC = func() time.Time { return time.Now().UTC() }

// NewEngine builds an engine over the full factor library. src feeds the
// jitter factor; validator feeds the quality factor. Either may be nil,
// zeroing the corresponding signal.
func NewEngine(src RandomSource, validator *safety.Validator) *Engine {
	return &Engine{
		factors:   Library(),
		rand:      src,
		validator: validator,
	}
}

// ScoreBatch scores every item under one profile and returns breakdowns in
// input order. An empty batch returns an empty slice without error. The
// profile is re-validated up front so a malformed one fails before any
// scoring occurs, and a profile naming an unknown factor fails with
// ErrMissingFactor.
func (e *Engine) ScoreBatch(items []models.ScoreableItem, profile WeightProfile, sctx Context) ([]models.ScoreBreakdown, error) {
	if _, err := NewWeightProfile(profile.Name, profile.Scale, profile.Additive, profile.Weights, profile.Boosts...); err != nil {
		return nil, err
	}
	for _, fw := range profile.Weights {
		if _, ok := e.factors[fw.Factor]; !ok {
			return nil, fmt.Errorf("%w: profile %q references unknown factor %q", ErrMissingFactor, profile.Name, fw.Factor)
		}
	}

	breakdowns := make([]models.ScoreBreakdown, 0, len(items))
	if len(items) == 0 {
		return breakdowns, nil
	}

	fc := &FactorContext{
		ViewerID:    sctx.ViewerID,
		Connections: sctx.Connections,
		Interests:   sctx.Interests,
		AuthorStats: sctx.AuthorStats,
		Batch:       collectBatchStats(items),
		Now:         nowUTC(),
		Rand:        e.rand,
		Validator:   e.validator,
	}

	for _, item := range items {
		breakdowns = append(breakdowns, e.scoreOne(item, profile, fc))
	}
	return breakdowns, nil
}

// scoreOne computes each factor once, applies weights, then the profile's
// boost multipliers in order, and clamps the total to the profile scale.
func (e *Engine) scoreOne(item models.ScoreableItem, profile WeightProfile, fc *FactorContext) models.ScoreBreakdown {
	bd := models.ScoreBreakdown{
		ItemID:  item.ItemID(),
		Factors: make([]models.FactorResult, 0, len(profile.Weights)),
	}

	var total float64
	for _, fw := range profile.Weights {
		raw := e.factors[fw.Factor](item, fc) * profile.Scale
		weighted := raw * fw.Weight
		total += weighted
		bd.Factors = append(bd.Factors, models.FactorResult{
			Factor:   fw.Factor,
			Raw:      raw,
			Weighted: weighted,
		})
	}

	for _, boost := range profile.Boosts {
		if boostApplies(boost.Name, item) {
			total *= boost.Multiplier
			bd.Boosts = append(bd.Boosts, boost.Name)
		}
	}

	if total < 0 {
		total = 0
	}
	if total > profile.Scale {
		total = profile.Scale
	}
	bd.Total = total
	return bd
}

// boostApplies maps a boost name to the item state that earns it.
func boostApplies(name string, item models.ScoreableItem) bool {
	switch name {
	case BoostFeatured:
		job, ok := item.(models.JobListing)
		return ok && job.Featured
	case BoostVerified:
		switch v := item.(type) {
		case models.JobListing:
			return v.EmployerVerified
		case models.SocialPost:
			return v.AuthorVerified
		default:
			return false
		}
	default:
		return false
	}
}
