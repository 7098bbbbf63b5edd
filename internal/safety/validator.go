package safety

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strings"

	"github.com/spacesedan/triberank/internal/models"
)

const startingScore = 100

var (
	// Monetary requests dressed up as fees are the classic job-scam shape:
	// "$99 processing fee", "pay a $50 deposit", "registration charge of $25".
	paymentPattern = regexp.MustCompile(`(?i)\$\s?\d[\d,]*(?:\.\d{2})?\s*(?:\w+\s+){0,3}(?:fee|deposit|charge|payment)|(?:fee|deposit|charge)\s+of\s+\$\s?\d`)

	// Salary claims too good to be real: "$5,000 per day", "earn $900 daily".
	salaryPattern = regexp.MustCompile(`(?i)(?:earn\s+)?\$\s?\d{3,}[\d,]*\s*(?:per|a|/)\s*(?:day|hour)|\$\s?\d{3,}[\d,]*\s*(?:daily|hourly)`)

	// Clickbait title shapes: listicle openers, disbelief hooks, shouting.
	clickbaitPattern = regexp.MustCompile(`(?i)^(?:you won'?t believe|top\s+\d+|\d+\s+(?:things|ways|reasons|secrets)|shocking|this one (?:trick|weird))|!{3,}`)
)

// Validator runs the configured keyword and pattern scans over submitted
// text and links. It is stateless after construction and safe for
// concurrent use.
type Validator struct {
	rules RuleSet
}

func NewValidator(rules RuleSet) *Validator {
	normalized := make([]string, 0, len(rules.SpamKeywords))
	for _, kw := range rules.SpamKeywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			normalized = append(normalized, kw)
		}
	}
	rules.SpamKeywords = normalized
	if rules.MinContentLength <= 0 {
		rules.MinContentLength = DefaultRules().MinContentLength
	}
	return &Validator{rules: rules}
}

// Penalty returns the configured score deduction for a flag.
func (v *Validator) Penalty(flag models.SafetyFlag) int {
	return v.rules.Penalties[flag]
}

// Validate scans text and links and returns the matched flags, the score
// (100 minus the summed flag penalties, floored at 0) and one suggestion
// per flag. A link that cannot be parsed is treated as unsafe rather than
// surfaced as an error, so moderation always proceeds.
func (v *Validator) Validate(text string, links []string) ([]models.SafetyFlag, int, []string) {
	var flags []models.SafetyFlag
	var suggestions []string
	lower := strings.ToLower(text)

	add := func(flag models.SafetyFlag, suggestion string) {
		for _, f := range flags {
			if f == flag {
				return
			}
		}
		flags = append(flags, flag)
		suggestions = append(suggestions, suggestion)
	}

	for _, kw := range v.rules.SpamKeywords {
		if strings.Contains(lower, kw) {
			add(models.FlagSpamKeywords, fmt.Sprintf("Remove promotional phrasing like %q.", kw))
			break
		}
	}

	if paymentPattern.MatchString(text) {
		add(models.FlagPaymentRequest, "Legitimate postings never ask applicants or readers for an upfront fee.")
	}

	if salaryPattern.MatchString(text) {
		add(models.FlagSuspiciousSalary, "Replace unrealistic pay claims with a verifiable salary range.")
	}

	if title, _, _ := strings.Cut(text, "\n"); clickbaitPattern.MatchString(strings.TrimSpace(title)) {
		add(models.FlagClickbait, "Rewrite the headline to describe the content plainly.")
	}

	for _, kw := range v.rules.AdultKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			add(models.FlagAdultContent, "Adult content is not allowed on this surface.")
			break
		}
	}

	for _, kw := range v.rules.SensitiveKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			add(models.FlagSensitiveInfo, "Never ask users for personal or financial details in a posting.")
			break
		}
	}

	if len(strings.TrimSpace(text)) < v.rules.MinContentLength {
		add(models.FlagShortContent, fmt.Sprintf("Add more detail; submissions need at least %d characters.", v.rules.MinContentLength))
	}

	for _, link := range links {
		if !v.safeLink(link) {
			add(models.FlagUnsafeLinks, fmt.Sprintf("Remove or replace the link %q.", link))
			break
		}
	}

	score := startingScore
	for _, flag := range flags {
		score -= v.rules.Penalties[flag]
	}
	if score < 0 {
		score = 0
	}

	return flags, score, suggestions
}

// safeLink is a syntactic check plus a denylist lookup. Raw-IP hosts are
// treated as unsafe alongside denylisted and unparseable ones.
func (v *Validator) safeLink(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	host := strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))
	if net.ParseIP(host) != nil {
		return false
	}
	for _, bad := range v.rules.SuspiciousDomains {
		if host == bad || strings.HasSuffix(host, "."+bad) {
			return false
		}
	}
	return true
}
