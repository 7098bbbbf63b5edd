package scoring

import (
	"errors"
	"testing"
)

func TestNewWeightProfileRejectsBadSums(t *testing.T) {
	_, err := NewWeightProfile("broken", 1.0, true, []FactorWeight{
		{Factor: FactorRecency, Weight: 0.25},
		{Factor: FactorEngagement, Weight: 0.25},
	})
	if !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile for weights summing to 0.5, got %v", err)
	}
}

func TestNewWeightProfileRejectsNegativeWeights(t *testing.T) {
	_, err := NewWeightProfile("negative", 1.0, false, []FactorWeight{
		{Factor: FactorRecency, Weight: -0.1},
	})
	if !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile for negative weight, got %v", err)
	}
}

func TestNewWeightProfileAcceptsEpsilonSlack(t *testing.T) {
	_, err := NewWeightProfile("close-enough", 1.0, true, []FactorWeight{
		{Factor: FactorRecency, Weight: 0.5},
		{Factor: FactorEngagement, Weight: 0.5000000001},
	})
	if err != nil {
		t.Fatalf("expected sum within epsilon to validate, got %v", err)
	}
}

func TestBuiltinProfilesAreValid(t *testing.T) {
	library := Library()
	for name, profile := range BuiltinProfiles() {
		if _, err := NewWeightProfile(profile.Name, profile.Scale, profile.Additive, profile.Weights, profile.Boosts...); err != nil {
			t.Errorf("builtin profile %q failed validation: %v", name, err)
		}
		for _, fw := range profile.Weights {
			if _, ok := library[fw.Factor]; !ok {
				t.Errorf("builtin profile %q references unknown factor %q", name, fw.Factor)
			}
		}
	}
}

func TestBuiltinProfileScales(t *testing.T) {
	profiles := BuiltinProfiles()
	for _, name := range []string{"discovery", "tribal", "chronological"} {
		if got := profiles[name].Scale; got != 1.0 {
			t.Errorf("feed profile %q scale = %v, want 1.0", name, got)
		}
	}
	for _, name := range []string{"job-default", "blog-default"} {
		if got := profiles[name].Scale; got != 10.0 {
			t.Errorf("vetting profile %q scale = %v, want 10", name, got)
		}
	}
}
