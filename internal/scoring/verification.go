package scoring

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9 .\-()]{6,18}[0-9]$`)

	socialHosts = []string{
		"linkedin.com",
		"twitter.com",
		"x.com",
		"facebook.com",
		"instagram.com",
	}
)

// emailMatchesDomain checks that the contact email's domain matches the
// claimed website, the strongest independent trust signal we have.
func emailMatchesDomain(email, website string) bool {
	at := strings.LastIndex(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	emailDomain := strings.ToLower(email[at+1:])

	u, err := url.Parse(website)
	if err != nil || u.Host == "" {
		// Accept bare domains like "example.com".
		u, err = url.Parse("https://" + website)
		if err != nil || u.Host == "" {
			return false
		}
	}
	host := strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))

	return host != "" && (host == emailDomain || strings.HasSuffix(emailDomain, "."+host))
}

func validPhone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}

// validSocialProfileURL is a syntactic check only: https URL on a known
// social host with a non-empty path.
func validSocialProfileURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "https" || u.Host == "" {
		return false
	}
	host := strings.ToLower(strings.TrimPrefix(u.Hostname(), "www."))
	for _, known := range socialHosts {
		if host == known && len(strings.Trim(u.Path, "/")) > 0 {
			return true
		}
	}
	return false
}
