package lead

import (
	"errors"
	"regexp"
	"strings"
)

// DefaultName is used when a lead has no name.
const DefaultName = "there"

var (
	ErrEmptyInput = errors.New("lead: empty input")
	ErrNoLeads    = errors.New("lead: no leads found")
)

// Lead is one prospect as pasted by the operator.
type Lead struct {
	Name        string
	FirstTrait  string
	SecondTrait string
}

// Second returns the second trait, falling back to the first.
func (l Lead) Second() string {
	if strings.TrimSpace(l.SecondTrait) == "" {
		return l.FirstTrait
	}
	return l.SecondTrait
}

// DisplayName returns the name or DefaultName.
func (l Lead) DisplayName() string {
	if n := strings.TrimSpace(l.Name); n != "" {
		return n
	}
	return DefaultName
}

// Block renders the lead in the canonical batch format.
func (l Lead) Block() string {
	var b strings.Builder
	b.WriteString(l.DisplayName())
	if l.FirstTrait != "" {
		b.WriteString("\n")
		b.WriteString(l.FirstTrait)
	}
	if l.SecondTrait != "" {
		b.WriteString("\n")
		b.WriteString(l.SecondTrait)
	}
	return b.String()
}

// SplitTraits splits a trait line on "/" surrounded by whitespace (or at
// either end of the line) outside parentheses. Slashes inside words such as
// "w/" or "24/7" and handles like "(ig/name)" stay in their trait. Empty
// parts are dropped.
func SplitTraits(line string) []string {
	var (
		out   []string
		depth int
		start int
	)
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case '/':
			if depth == 0 && spaceAt(line, i-1) && spaceAt(line, i+1) {
				out = appendTrait(out, line[start:i])
				start = i + 1
			}
		}
	}
	return appendTrait(out, line[start:])
}

// spaceAt reports whether line[i] is blank; positions outside the line
// count as blank.
func spaceAt(line string, i int) bool {
	if i < 0 || i >= len(line) {
		return true
	}
	switch line[i] {
	case ' ', '\t':
		return true
	}
	return false
}

func appendTrait(out []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		out = append(out, s)
	}
	return out
}

func fromTraits(name string, traits []string) Lead {
	l := Lead{Name: strings.TrimSpace(name)}
	if len(traits) > 0 {
		l.FirstTrait = traits[0]
	}
	if len(traits) > 1 {
		l.SecondTrait = traits[1]
	}
	return l
}

// ParseSingle parses "Name\ntrait / trait" with an optional third line
// holding the second trait, the same as one block of Parse. A blank name
// becomes DefaultName.
func ParseSingle(input string) (Lead, error) {
	input = normalizeNewlines(input)
	if strings.TrimSpace(input) == "" {
		return Lead{}, ErrEmptyInput
	}
	lines := strings.Split(input, "\n")
	l := fromLines(lines[0], lines[1:])
	if l.Name == "" {
		l.Name = DefaultName
	}
	return l, nil
}

// fromLines builds a lead from a name and its trait lines: the first
// non-blank line is split into traits, and a following line supplies the
// second trait when the first yields only one.
func fromLines(name string, rest []string) Lead {
	var lines []string
	for _, ln := range rest {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	var traits []string
	if len(lines) > 0 {
		traits = SplitTraits(lines[0])
	}
	if len(traits) == 1 && len(lines) > 1 {
		traits = append(traits, lines[1])
	}
	return fromTraits(name, traits)
}

var reBlankLine = regexp.MustCompile(`\n[ \t]*\n`)

// Parse reads a batch. Input containing tabs is read as rows of
// name<TAB>trait[<TAB>trait]; anything else as blank-line separated
// blocks of name, trait line and an optional second-trait line.
func Parse(input string) ([]Lead, error) {
	input = normalizeNewlines(input)
	if strings.TrimSpace(input) == "" {
		return nil, ErrEmptyInput
	}
	var leads []Lead
	if strings.Contains(input, "\t") {
		leads = parseRows(input)
	} else {
		leads = parseBlocks(input)
	}
	if len(leads) == 0 {
		return nil, ErrNoLeads
	}
	return leads, nil
}

func parseBlocks(input string) []Lead {
	var leads []Lead
	for _, block := range reBlankLine.Split(strings.TrimSpace(input), -1) {
		lines := strings.Split(strings.TrimSpace(block), "\n")
		if strings.TrimSpace(lines[0]) == "" {
			continue
		}
		leads = append(leads, fromLines(lines[0], lines[1:]))
	}
	return leads
}

func parseRows(input string) []Lead {
	var leads []Lead
	for _, row := range strings.Split(input, "\n") {
		if strings.TrimSpace(row) == "" {
			continue
		}
		var traits []string
		fields := strings.Split(row, "\t")
		for _, f := range fields[1:] {
			traits = append(traits, SplitTraits(f)...)
		}
		name := strings.TrimSpace(fields[0])
		if name == "" && len(traits) == 0 {
			continue
		}
		leads = append(leads, fromTraits(name, traits))
	}
	return leads
}

// Format rewrites tab-separated rows into canonical blocks.
func Format(input string) (string, error) {
	leads, err := Parse(input)
	if err != nil {
		return "", err
	}
	blocks := make([]string, len(leads))
	for i, l := range leads {
		blocks[i] = l.Block()
	}
	return strings.Join(blocks, "\n\n") + "\n", nil
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}
