package sentiment

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

var (
	mdLinkPattern  = regexp.MustCompile(`\[(.*?)\]\((https?://[^\s)]+)\)`)
	bareURLPattern = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)
)

// ExtractLinks pulls every markdown and bare URL out of a submission body
// so the safety validator can vet them individually.
func ExtractLinks(input string) []string {
	var links []string
	for _, m := range mdLinkPattern.FindAllStringSubmatch(input, -1) {
		links = append(links, m[2])
	}
	stripped := mdLinkPattern.ReplaceAllString(input, "$1")
	links = append(links, bareURLPattern.FindAllString(stripped, -1)...)
	return links
}

// PlainText renders markdown and strips markup and URLs, leaving prose for
// the keyword scans and the tone analyzer.
func PlainText(input string) string {
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	text := htmlTagPattern.ReplaceAllString(string(rendered), " ")
	text = mdLinkPattern.ReplaceAllString(text, "$1")
	text = bareURLPattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

// Tone scores prose with the VADER lexicon and labels it. The lexicon is a
// fixed hand-tuned table, so the result is deterministic for a given input.
func Tone(text string) (float64, string) {
	scores := analyzer.PolarityScores(PlainText(text))
	compound := scores.Compound

	var label string
	switch {
	case compound >= 0.20:
		label = "positive"
	case compound <= -0.20:
		label = "negative"
	default:
		label = "neutral"
	}

	return compound, label
}
