package redact

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var (
	handleParenRe = regexp.MustCompile(`(?i)\((ig|tt|instagram)\s*[/:@]\s*@?[^)]+\)`)
	atParenRe     = regexp.MustCompile(`\(@[^)]+\)`)
	siteParenRe   = regexp.MustCompile(`\([^@/()\s]+\.[a-zA-Z]{2,}[^)]*\)`)
	emailRe       = regexp.MustCompile(`(?i)[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	mentionRe     = regexp.MustCompile(`(^|[\s,(])@[A-Za-z0-9._]{2,}`)
	urlRe         = regexp.MustCompile(`https?://[^\s"'<>)]+`)
	phoneRe       = regexp.MustCompile(`\+?\d[\d\s\-]{6,}\d`)
)

// String masks contact details in lead text: social handles, emails,
// URLs and phone numbers. The surrounding words are kept so log lines
// still show which rule family a trait belongs to.
func String(s string) string {
	if s == "" {
		return s
	}
	out := s
	out = handleParenRe.ReplaceAllString(out, "([REDACTED_HANDLE])")
	out = atParenRe.ReplaceAllString(out, "([REDACTED_HANDLE])")
	out = emailRe.ReplaceAllString(out, "[REDACTED_EMAIL]")
	out = urlRe.ReplaceAllStringFunc(out, redactURL)
	out = siteParenRe.ReplaceAllString(out, "([REDACTED_SITE])")
	out = mentionRe.ReplaceAllString(out, "${1}@[REDACTED]")
	out = phoneRe.ReplaceAllString(out, "[REDACTED_PHONE]")
	return out
}

// Name keeps the first letter of a lead name.
func Name(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(r[0]) + "***"
}

// Field returns a zap string field whose value has been redacted.
func Field(key, value string) zap.Field {
	return zap.String(key, String(value))
}

func redactURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "[REDACTED_URL]"
	}
	return fmt.Sprintf("%s://%s/[REDACTED_PATH]", u.Scheme, u.Host)
}
