package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/spacesedan/triberank/internal/models"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func post(id string, ageHours float64, eng models.Engagement) models.SocialPost {
	return models.SocialPost{
		ID:         id,
		AuthorID:   "author-" + id,
		PostedAt:   testNow.Add(-time.Duration(ageHours * float64(time.Hour))),
		Engagement: eng,
	}
}

func testContext(items ...models.ScoreableItem) *FactorContext {
	return &FactorContext{
		Batch: collectBatchStats(items),
		Now:   testNow,
	}
}

func TestRecencyMonotonicInAge(t *testing.T) {
	fc := testContext()
	ages := []float64{0, 1, 12, 24, 100, 168, 500}

	prev := math.Inf(1)
	for _, age := range ages {
		v := recencyFactor(post("p", age, models.Engagement{}), fc)
		if v > prev {
			t.Fatalf("recency increased with age: %v hours scored %v, previous %v", age, v, prev)
		}
		prev = v
	}

	if v := recencyFactor(post("old", 500, models.Engagement{}), fc); v != 0 {
		t.Errorf("feed recency past a week = %v, want 0", v)
	}
}

func TestJobRecencyFloorAndCap(t *testing.T) {
	fc := testContext()
	fresh := models.JobListing{ID: "j1", PostedAt: testNow}
	stale := models.JobListing{ID: "j2", PostedAt: testNow.Add(-2000 * time.Hour)}

	if v := recencyFactor(fresh, fc); v != 1.0 {
		t.Errorf("fresh job recency = %v, want 1.0", v)
	}
	if v := recencyFactor(stale, fc); v != 0.1 {
		t.Errorf("stale job recency = %v, want floor 0.1", v)
	}
}

func TestEngagementBatchNormalization(t *testing.T) {
	quiet := post("quiet", 1, models.Engagement{})
	busy := post("busy", 1, models.Engagement{Likes: 40, Comments: 10, Shares: 5})
	mid := post("mid", 1, models.Engagement{Likes: 20, Comments: 5, Shares: 1})
	fc := testContext(quiet, busy, mid)

	if v := engagementFactor(quiet, fc); v != 0 {
		t.Errorf("all-zero engagement = %v, want 0", v)
	}
	if v := engagementFactor(busy, fc); math.Abs(v-1.0) > 1e-9 {
		t.Errorf("batch-max engagement = %v, want 1.0", v)
	}
	if v := engagementFactor(mid, fc); v <= 0 || v >= 1 {
		t.Errorf("mid engagement = %v, want strictly between 0 and 1", v)
	}
}

func TestEngagementEmptyBatchSafe(t *testing.T) {
	// Maxima default to 1 so a lone zero-engagement item never divides by zero.
	lone := post("lone", 1, models.Engagement{})
	fc := testContext()
	if v := engagementFactor(lone, fc); v != 0 {
		t.Errorf("engagement against empty batch = %v, want 0", v)
	}
}

func TestJobEngagementFormula(t *testing.T) {
	fc := testContext()
	job := models.JobListing{
		ID:         "j",
		PostedAt:   testNow,
		Engagement: models.Engagement{Clicks: 4, Saves: 3, Shares: 2, Applications: 1},
	}
	// (4 + 2*3 + 3*2 + 5*1) / 20 = 1.05 on the 10 scale.
	if v := engagementFactor(job, fc); math.Abs(v-0.105) > 1e-9 {
		t.Errorf("job engagement = %v, want 0.105", v)
	}

	viral := models.JobListing{
		ID:         "viral",
		PostedAt:   testNow,
		Engagement: models.Engagement{Applications: 1000},
	}
	if v := engagementFactor(viral, fc); v != 1.0 {
		t.Errorf("job engagement above cap = %v, want 1.0", v)
	}
}

func TestAffinityTiers(t *testing.T) {
	fc := testContext()
	fc.ViewerID = "viewer"
	fc.Connections = map[string]models.TribalConnection{
		"friend": {UserID: "viewer", ConnectedUserID: "friend", Strength: 0.7},
	}

	own := models.SocialPost{ID: "own", AuthorID: "viewer", PostedAt: testNow}
	friendly := models.SocialPost{ID: "friendly", AuthorID: "friend", PostedAt: testNow}
	stranger := models.SocialPost{ID: "stranger", AuthorID: "nobody", PostedAt: testNow}

	if v := affinityFactor(own, fc); v != 1.0 {
		t.Errorf("self-authored affinity = %v, want 1.0", v)
	}
	if v := affinityFactor(friendly, fc); v != 0.7 {
		t.Errorf("connected affinity = %v, want edge strength 0.7", v)
	}
	if v := affinityFactor(stranger, fc); v != 0.1 {
		t.Errorf("stranger affinity = %v, want floor 0.1", v)
	}
}

func TestInterestMatchAveragesAndNeutral(t *testing.T) {
	fc := testContext()
	fc.Interests = &models.UserInterestProfile{
		UserID:     "viewer",
		Categories: map[string]float64{"music": 0.8},
		Tags:       map[string]float64{"guitar": 0.4},
	}

	matched := models.SocialPost{ID: "m", PostedAt: testNow, CategoryList: []string{"music"}, TagList: []string{"guitar"}}
	if v := interestFactor(matched, fc); math.Abs(v-0.6) > 1e-9 {
		t.Errorf("interest match = %v, want average 0.6", v)
	}

	unseen := models.SocialPost{ID: "u", PostedAt: testNow, CategoryList: []string{"woodworking"}}
	if v := interestFactor(unseen, fc); v != 0.3 {
		t.Errorf("unmatched interest = %v, want neutral 0.3", v)
	}
}

func TestVerificationSubScores(t *testing.T) {
	fc := testContext()

	full := models.JobListing{
		ID:               "full",
		PostedAt:         testNow,
		ContactEmail:     "jobs@acme.example",
		Website:          "https://www.acme.example",
		Phone:            "+1 (555) 123-4567",
		SocialProfileURL: "https://linkedin.com/company/acme",
		EmployerVerified: true,
		ProfileComplete:  true,
	}
	if v := verificationFactor(full, fc); v != 1.0 {
		t.Errorf("fully verified employer = %v, want 1.0", v)
	}

	bare := models.JobListing{ID: "bare", PostedAt: testNow}
	if v := verificationFactor(bare, fc); v != 0 {
		t.Errorf("unverified employer = %v, want 0", v)
	}

	mismatch := models.JobListing{
		ID:           "mismatch",
		PostedAt:     testNow,
		ContactEmail: "jobs@freemail.example",
		Website:      "https://acme.example",
	}
	if v := verificationFactor(mismatch, fc); v != 0 {
		t.Errorf("email/domain mismatch = %v, want 0", v)
	}
}

func TestHistoryFactorBounds(t *testing.T) {
	fc := testContext()
	fc.AuthorStats = map[string]models.AuthorStats{
		"author-clean":    {Submissions: 100, PositiveRatio: 1.0},
		"author-reported": {Submissions: 2, PositiveRatio: 0.5, OpenReports: 20},
	}

	clean := historyFactor(post("clean", 1, models.Engagement{}), fc)
	if clean <= 0.5 || clean > 1.0 {
		t.Errorf("long clean history = %v, want in (0.5, 1.0]", clean)
	}

	reported := historyFactor(post("reported", 1, models.Engagement{}), fc)
	if reported != 0 {
		t.Errorf("heavily reported author = %v, want floored at 0", reported)
	}

	unknown := historyFactor(post("unknown", 1, models.Engagement{}), fc)
	if unknown != 0.5 {
		t.Errorf("unknown author history = %v, want neutral 0.5", unknown)
	}
}
