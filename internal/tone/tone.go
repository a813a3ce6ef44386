package tone

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Level is the Singlish localization level. There is no level 1.
type Level int

const (
	Standard Level = 0
	Light    Level = 2
	Medium   Level = 3
	Heavy    Level = 4
)

// Levels lists every supported level in ascending order.
var Levels = []Level{Standard, Light, Medium, Heavy}

// ErrUnknownLevel is returned by ParseLevel for anything outside Levels.
var ErrUnknownLevel = errors.New("tone: unknown level")

// ParseLevel accepts "0", "2", "3", "4" with an optional "level" prefix.
func ParseLevel(s string) (Level, error) {
	v := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "level")
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
	l := Level(n)
	if !l.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
	return l, nil
}

// Valid reports whether l is one of Levels.
func (l Level) Valid() bool {
	switch l {
	case Standard, Light, Medium, Heavy:
		return true
	}
	return false
}

func (l Level) String() string {
	return "level" + strconv.Itoa(int(l))
}

// Section is a part of the message that tone may rewrite.
type Section string

const (
	SectionIntro Section = "intro"
	SectionBTW   Section = "btw"
	SectionPS    Section = "ps"
	SectionBody  Section = "body"
)

// Transforms reports whether section is rewritten at level.
func Transforms(section Section, level Level) bool {
	switch section {
	case SectionBTW:
		return level >= Light
	case SectionPS:
		return level >= Medium
	case SectionIntro:
		return level >= Heavy
	}
	return false
}

// Scope returns the sections rewritten at level.
func Scope(level Level) []Section {
	var out []Section
	for _, s := range []Section{SectionIntro, SectionBTW, SectionPS, SectionBody} {
		if Transforms(s, level) {
			out = append(out, s)
		}
	}
	return out
}

// Apply rewrites phrase for section at level. Phrases that no rule knows
// pass through unchanged.
func Apply(phrase string, section Section, level Level) string {
	if phrase == "" || !Transforms(section, level) {
		return phrase
	}
	switch section {
	case SectionBTW:
		return applyBTW(phrase)
	case SectionPS:
		return applyPS(phrase)
	case SectionIntro:
		return applyIntro(phrase)
	}
	return phrase
}
