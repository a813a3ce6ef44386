package trait

import (
	"regexp"
	"strings"
)

// typoFixes is the closed list of misspellings seen in pasted lead data.
// Entries are matched as whole words so corrections never land inside
// longer words.
var typoFixes = []struct {
	from string
	to   string
}{
	{"travelig", "traveling"},
	{"promotoes", "promotes"},
	{"stuided", "studied"},
	{"ncie", "nice"},
	{"ahs", "has"},
	{"nie", "nice"},
	{"playig", "playing"},
	{"flexing back muscle", "flexing his back muscles"},
}

var (
	typoRes    = compileTypoFixes()
	reHandleIn = regexp.MustCompile(`\s*\([^)]*\)`)
)

func compileTypoFixes() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(typoFixes))
	for i, fix := range typoFixes {
		out[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(fix.from) + `\b`)
	}
	return out
}

// Normalize lowercases and trims a raw trait, collapses whitespace and
// applies the typo table. Parenthetical content is kept for handle lookup.
func Normalize(raw string) string {
	out := strings.ToLower(strings.TrimSpace(raw))
	if out == "" {
		return ""
	}
	out = strings.Join(strings.Fields(out), " ")
	for i, re := range typoRes {
		out = re.ReplaceAllLiteralString(out, typoFixes[i].to)
	}
	return out
}

// Trait is a parsed trait string.
type Trait struct {
	Raw    string
	Text   string // normalized
	Handle string // social handle or website, if any
	// Display is Text without any parenthetical handle, for phrases
	// that echo the trait back.
	Display string
}

// Parse normalizes raw and extracts any embedded handle.
func Parse(raw string) Trait {
	t := Trait{Raw: raw, Text: Normalize(raw)}
	t.Handle, _ = ExtractHandle(raw)
	t.Display = strings.Join(strings.Fields(reHandleIn.ReplaceAllString(t.Text, "")), " ")
	if t.Display == "" {
		// A bare handle such as "(ig/foo)" reads as the handle itself.
		t.Display = t.Text
		if t.Handle != "" {
			t.Display = t.Handle
		}
	}
	return t
}

// Empty reports whether the trait carries no text.
func (t Trait) Empty() bool {
	return t.Text == ""
}

// HasHandle reports whether a handle or website was found.
func (t Trait) HasHandle() bool {
	return t.Handle != ""
}
