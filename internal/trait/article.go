package trait

import "strings"

var (
	silentH     = []string{"hour", "honest", "honour", "honor", "heir"}
	consonantYU = []string{"uni", "use", "usu", "euro", "one", "once"}
)

// Article returns "a" or "an" for the word that starts phrase, going by
// sound rather than spelling for the common exceptions.
func Article(phrase string) string {
	w := strings.ToLower(strings.TrimSpace(phrase))
	if w == "" {
		return "a"
	}
	for _, p := range silentH {
		if strings.HasPrefix(w, p) {
			return "an"
		}
	}
	for _, p := range consonantYU {
		if strings.HasPrefix(w, p) {
			return "a"
		}
	}
	switch w[0] {
	case 'a', 'e', 'i', 'o', 'u':
		return "an"
	}
	return "a"
}
