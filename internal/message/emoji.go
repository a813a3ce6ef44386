package message

import "regexp"

// psEmoji is checked in order against the finished PS question.
var psEmoji = []struct {
	re    *regexp.Regexp
	emoji string
}{
	{regexp.MustCompile(`(?i)sunglasses|shades`), "😎"},
	{regexp.MustCompile(`(?i)jacket|\bfire\b`), "🔥"},
	{regexp.MustCompile(`(?i)beanie|sweater|cozy`), "🧣"},
	{regexp.MustCompile(`(?i)\bwatch`), "⌚"},
	{regexp.MustCompile(`(?i)\bcaps?\b`), "🧢"},
	{regexp.MustCompile(`(?i)glasses`), "👓"},
	{regexp.MustCompile(`(?i)beard|haircut|barber`), "✂️"},
	{regexp.MustCompile(`(?i)puffer`), "🧥"},
	{regexp.MustCompile(`(?i)\bmagic`), "✨"},
}

// Emoji returns the emoji that suits a PS question, or "".
func Emoji(ps string) string {
	for _, e := range psEmoji {
		if e.re.MatchString(ps) {
			return e.emoji
		}
	}
	return ""
}
