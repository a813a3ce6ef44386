package trait

import (
	"regexp"
	"strings"
)

// handlePatterns are tried in order; the first match wins.
var handlePatterns = []struct {
	id string
	re *regexp.Regexp
}{
	{"ig_slash", regexp.MustCompile(`(?i)\(ig/([^)]+)\)`)},
	{"ig_colon", regexp.MustCompile(`(?i)\(ig:\s*([^)]+)\)`)},
	{"ig_at", regexp.MustCompile(`(?i)\(ig\s*@([^)]+)\)`)},
	{"tt_slash", regexp.MustCompile(`(?i)\(tt/\s*@?([^)]+)\)`)},
	{"at", regexp.MustCompile(`(?i)\(@([^)]+)\)`)},
	{"instagram", regexp.MustCompile(`(?i)\(instagram:\s*([^)]+)\)`)},
	{"website", regexp.MustCompile(`(?i)\(([^@/)]+\.[^)]+)\)`)},
}

// ExtractHandle returns the social handle or website embedded in a trait
// as "(ig/x)", "(ig: x)", "(ig @x)", "(tt/@x)", "(@x)", "(instagram: x)"
// or "(domain.tld)".
func ExtractHandle(raw string) (string, bool) {
	for _, p := range handlePatterns {
		m := p.re.FindStringSubmatch(raw)
		if len(m) < 2 {
			continue
		}
		h := strings.TrimSpace(m[1])
		if h == "" {
			continue
		}
		return h, true
	}
	return "", false
}
