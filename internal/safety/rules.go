package safety

import "github.com/spacesedan/triberank/internal/models"

// RuleSet is the keyword/pattern configuration for the validator. Tables
// are supplied by the caller; DefaultRules covers the common case. The
// scans are intentionally keyword and pattern based, not semantic, so
// false positives and negatives are expected and handled by the manual
// moderation queue downstream.
type RuleSet struct {
	SpamKeywords      []string
	AdultKeywords     []string
	SensitiveKeywords []string
	SuspiciousDomains []string
	MinContentLength  int
	Penalties         map[models.SafetyFlag]int
}

// DefaultRules returns the shipped rule tables. The per-flag penalties are
// deducted from a starting score of 100, floored at 0.
func DefaultRules() RuleSet {
	return RuleSet{
		SpamKeywords: []string{
			"make money fast",
			"work from home guaranteed",
			"no experience necessary!!!",
			"get rich quick",
			"limited spots",
			"act now",
			"100% free",
			"double your income",
			"crypto giveaway",
			"click here to claim",
		},
		AdultKeywords: []string{
			"xxx",
			"adult content",
			"escort service",
			"onlyfans",
			"nsfw",
		},
		SensitiveKeywords: []string{
			"social security number",
			"ssn",
			"bank account number",
			"credit card number",
			"send a copy of your id",
			"mother's maiden name",
			"routing number",
		},
		SuspiciousDomains: []string{
			"bit.ly",
			"tinyurl.com",
			"grabify.link",
			"free-money.example",
		},
		MinContentLength: 80,
		Penalties: map[models.SafetyFlag]int{
			models.FlagSpamKeywords:     30,
			models.FlagUnsafeLinks:      25,
			models.FlagShortContent:     25,
			models.FlagClickbait:        20,
			models.FlagAdultContent:     40,
			models.FlagSensitiveInfo:    45,
			models.FlagPaymentRequest:   35,
			models.FlagSuspiciousSalary: 35,
		},
	}
}
