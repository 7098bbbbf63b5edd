package scoring

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidProfile marks a malformed weight configuration. Scoring
	// never starts with one; nothing is silently corrected.
	ErrInvalidProfile = errors.New("invalid weight profile")
	// ErrMissingFactor marks a profile referencing a factor name the
	// library does not define.
	ErrMissingFactor = errors.New("missing factor")
)

const additiveEpsilon = 1e-6

// FactorWeight binds one factor name to its weight. Order matters: factors
// are evaluated and reported in profile order.
type FactorWeight struct {
	Factor string  `json:"factor"`
	Weight float64 `json:"weight"`
}

// Boost is a post-sum multiplicative adjustment. Boosts apply sequentially
// in profile order, then the total is re-clamped to the scale.
type Boost struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// WeightProfile is a named scoring mode. Scale documents the profile's
// score convention (1.0 for feed profiles, 10 for vetting profiles); every
// factor raw value and the total are expressed on that scale. Additive
// profiles must have weights summing to 1.
type WeightProfile struct {
	Name     string         `json:"name"`
	Scale    float64        `json:"scale"`
	Additive bool           `json:"additive"`
	Weights  []FactorWeight `json:"weights"`
	Boosts   []Boost        `json:"boosts,omitempty"`
}

// NewWeightProfile validates and returns a profile. Negative weights and
// additive weights not summing to 1±1e-6 fail with ErrInvalidProfile.
func NewWeightProfile(name string, scale float64, additive bool, weights []FactorWeight, boosts ...Boost) (WeightProfile, error) {
	if scale <= 0 {
		return WeightProfile{}, fmt.Errorf("%w: profile %q has non-positive scale %v", ErrInvalidProfile, name, scale)
	}

	sum := 0.0
	for _, fw := range weights {
		if fw.Weight < 0 {
			return WeightProfile{}, fmt.Errorf("%w: profile %q has negative weight for %q", ErrInvalidProfile, name, fw.Factor)
		}
		sum += fw.Weight
	}

	if additive && math.Abs(sum-1.0) > additiveEpsilon {
		return WeightProfile{}, fmt.Errorf("%w: profile %q weights sum to %v, want 1.0", ErrInvalidProfile, name, sum)
	}

	for _, b := range boosts {
		if b.Multiplier <= 0 {
			return WeightProfile{}, fmt.Errorf("%w: profile %q boost %q has non-positive multiplier", ErrInvalidProfile, name, b.Name)
		}
	}

	return WeightProfile{
		Name:     name,
		Scale:    scale,
		Additive: additive,
		Weights:  weights,
		Boosts:   boosts,
	}, nil
}

func mustProfile(p WeightProfile, err error) WeightProfile {
	if err != nil {
		panic(err)
	}
	return p
}

// DiscoveryProfile favors fresh content matched to the viewer's interests,
// with a small jitter term for feed diversity.
func DiscoveryProfile() WeightProfile {
	return mustProfile(NewWeightProfile("discovery", 1.0, true, []FactorWeight{
		{Factor: FactorRecency, Weight: 0.25},
		{Factor: FactorInterest, Weight: 0.25},
		{Factor: FactorEngagement, Weight: 0.20},
		{Factor: FactorAffinity, Weight: 0.20},
		{Factor: FactorJitter, Weight: 0.10},
	}))
}

// TribalProfile favors content from connected users.
func TribalProfile() WeightProfile {
	return mustProfile(NewWeightProfile("tribal", 1.0, true, []FactorWeight{
		{Factor: FactorAffinity, Weight: 0.45},
		{Factor: FactorRecency, Weight: 0.25},
		{Factor: FactorEngagement, Weight: 0.15},
		{Factor: FactorInterest, Weight: 0.15},
	}))
}

// ChronologicalProfile orders purely by recency.
func ChronologicalProfile() WeightProfile {
	return mustProfile(NewWeightProfile("chronological", 1.0, true, []FactorWeight{
		{Factor: FactorRecency, Weight: 1.0},
	}))
}

// JobDefaultProfile is the 0-10 scale vetting profile for job listings,
// with featured and verified-employer boosts applied in that order.
func JobDefaultProfile() WeightProfile {
	return mustProfile(NewWeightProfile("job-default", 10, true, []FactorWeight{
		{Factor: FactorVerification, Weight: 0.30},
		{Factor: FactorQuality, Weight: 0.25},
		{Factor: FactorEngagement, Weight: 0.25},
		{Factor: FactorRecency, Weight: 0.20},
	},
		Boost{Name: BoostFeatured, Multiplier: 1.10},
		Boost{Name: BoostVerified, Multiplier: 1.05},
	))
}

// BlogDefaultProfile is the 0-10 scale vetting profile for blog submissions.
func BlogDefaultProfile() WeightProfile {
	return mustProfile(NewWeightProfile("blog-default", 10, true, []FactorWeight{
		{Factor: FactorQuality, Weight: 0.45},
		{Factor: FactorHistory, Weight: 0.35},
		{Factor: FactorRecency, Weight: 0.20},
	}))
}

// BuiltinProfiles returns all named profiles shipped with the engine.
func BuiltinProfiles() map[string]WeightProfile {
	profiles := []WeightProfile{
		DiscoveryProfile(),
		TribalProfile(),
		ChronologicalProfile(),
		JobDefaultProfile(),
		BlogDefaultProfile(),
	}
	byName := make(map[string]WeightProfile, len(profiles))
	for _, p := range profiles {
		byName[p.Name] = p
	}
	return byName
}
