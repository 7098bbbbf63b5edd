package scoring

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/spacesedan/triberank/internal/models"
	"github.com/spacesedan/triberank/internal/safety"
)

type fixedRand struct{ value float64 }

func (f fixedRand) Float64() float64 { return f.value }

func freezeNow(t *testing.T) {
	t.Helper()
	prev := nowUTC
	t.Cleanup(func() { nowUTC = prev })
	nowUTC = func() time.Time { return testNow }
}

func TestScoreBatchEmpty(t *testing.T) {
	engine := NewEngine(fixedRand{0.5}, nil)
	breakdowns, err := engine.ScoreBatch(nil, DiscoveryProfile(), Context{})
	if err != nil {
		t.Fatalf("empty batch returned error: %v", err)
	}
	if len(breakdowns) != 0 {
		t.Fatalf("empty batch returned %d breakdowns, want 0", len(breakdowns))
	}
}

func TestScoreBatchRejectsMalformedProfile(t *testing.T) {
	engine := NewEngine(fixedRand{0.5}, nil)
	bad := WeightProfile{
		Name:     "bad",
		Scale:    1.0,
		Additive: true,
		Weights:  []FactorWeight{{Factor: FactorRecency, Weight: 0.5}},
	}

	_, err := engine.ScoreBatch([]models.ScoreableItem{post("p", 1, models.Engagement{})}, bad, Context{})
	if !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile, got %v", err)
	}
}

func TestScoreBatchRejectsUnknownFactor(t *testing.T) {
	engine := NewEngine(fixedRand{0.5}, nil)
	phantom := WeightProfile{
		Name:    "phantom",
		Scale:   1.0,
		Weights: []FactorWeight{{Factor: "charisma", Weight: 0.5}},
	}

	_, err := engine.ScoreBatch([]models.ScoreableItem{post("p", 1, models.Engagement{})}, phantom, Context{})
	if !errors.Is(err, ErrMissingFactor) {
		t.Fatalf("expected ErrMissingFactor, got %v", err)
	}
}

func TestScoresStayWithinScaleAfterBoosts(t *testing.T) {
	freezeNow(t)
	engine := NewEngine(fixedRand{1.0}, safety.NewValidator(safety.DefaultRules()))

	// Engineered to max every factor, then earn both boosts on top.
	job := models.JobListing{
		ID:               "hot",
		EmployerID:       "acme",
		PostedAt:         testNow,
		Title:            "Senior platform engineer",
		Description:      "We are a long-established team looking for an engineer to own our ranking infrastructure end to end.",
		ContactEmail:     "jobs@acme.example",
		Website:          "https://acme.example",
		Phone:            "+1 555 123 4567",
		SocialProfileURL: "https://linkedin.com/company/acme",
		EmployerVerified: true,
		ProfileComplete:  true,
		Featured:         true,
		Engagement:       models.Engagement{Applications: 500},
	}

	breakdowns, err := engine.ScoreBatch([]models.ScoreableItem{job}, JobDefaultProfile(), Context{})
	if err != nil {
		t.Fatalf("ScoreBatch failed: %v", err)
	}

	bd := breakdowns[0]
	if bd.Total < 0 || bd.Total > 10 {
		t.Errorf("total %v outside [0, 10] after boosts", bd.Total)
	}
	if len(bd.Boosts) != 2 || bd.Boosts[0] != BoostFeatured || bd.Boosts[1] != BoostVerified {
		t.Errorf("boosts = %v, want [featured verified] in order", bd.Boosts)
	}
	for _, fr := range bd.Factors {
		if fr.Raw < 0 || fr.Raw > 10 {
			t.Errorf("factor %s raw %v outside [0, 10]", fr.Factor, fr.Raw)
		}
	}
}

func TestScoreBatchDeterministicUnderFixedSeed(t *testing.T) {
	freezeNow(t)

	items := []models.ScoreableItem{
		post("a", 2, models.Engagement{Likes: 10, Comments: 2}),
		post("b", 5, models.Engagement{Likes: 3, Shares: 1}),
		post("c", 1, models.Engagement{Comments: 8}),
	}
	sctx := Context{ViewerID: "viewer"}

	first, err := NewEngine(NewSeededSource(42), nil).ScoreBatch(items, DiscoveryProfile(), sctx)
	if err != nil {
		t.Fatalf("first pass failed: %v", err)
	}
	second, err := NewEngine(NewSeededSource(42), nil).ScoreBatch(items, DiscoveryProfile(), sctx)
	if err != nil {
		t.Fatalf("second pass failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatal("identical inputs and seed produced different breakdowns")
	}

	firstOrder := SortByScore(items, first)
	secondOrder := SortByScore(items, second)
	for i := range firstOrder {
		if firstOrder[i].ItemID() != secondOrder[i].ItemID() {
			t.Fatalf("orderings diverge at %d: %s vs %s", i, firstOrder[i].ItemID(), secondOrder[i].ItemID())
		}
	}
}

func TestBreakdownFactorsFollowProfileOrder(t *testing.T) {
	freezeNow(t)
	engine := NewEngine(fixedRand{0}, nil)

	breakdowns, err := engine.ScoreBatch(
		[]models.ScoreableItem{post("p", 1, models.Engagement{})},
		TribalProfile(),
		Context{},
	)
	if err != nil {
		t.Fatalf("ScoreBatch failed: %v", err)
	}

	profile := TribalProfile()
	factors := breakdowns[0].Factors
	if len(factors) != len(profile.Weights) {
		t.Fatalf("got %d factor results, want %d", len(factors), len(profile.Weights))
	}
	for i, fw := range profile.Weights {
		if factors[i].Factor != fw.Factor {
			t.Errorf("factor %d = %s, want %s", i, factors[i].Factor, fw.Factor)
		}
	}
}
