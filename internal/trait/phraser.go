package trait

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Fallbacks used when a lead carries no usable trait.
const (
	GenericCompliment = "love your profile, keep it up!"
	GenericQuestion   = "How's your gym progress going"
)

// Selector picks one of n question variants. Implementations must return
// a value in [0, n); out-of-range picks are clamped by the phraser.
type Selector interface {
	Pick(n int) int
}

// SelectorFunc adapts a function to Selector.
type SelectorFunc func(n int) int

func (f SelectorFunc) Pick(n int) int { return f(n) }

// FirstVariant always picks the first variant.
func FirstVariant() Selector {
	return SelectorFunc(func(int) int { return 0 })
}

type seeded struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// Seeded returns a deterministic selector that is safe for concurrent use.
func Seeded(seed uint64) Selector {
	return &seeded{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seeded) Pick(n int) int {
	if n <= 1 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Phraser turns traits into BTW and PS phrases.
type Phraser struct {
	sel Selector
}

// NewPhraser returns a Phraser using sel for variant choice. A nil sel
// means FirstVariant.
func NewPhraser(sel Selector) *Phraser {
	if sel == nil {
		sel = FirstVariant()
	}
	return &Phraser{sel: sel}
}

// FirstTrait returns the observational BTW phrase for raw.
func (p *Phraser) FirstTrait(raw string) Phrase {
	t := Parse(raw)
	if t.Empty() {
		return Phrase{Text: GenericCompliment, RuleID: ruleFirstGeneric, Category: CategoryUnclassified}
	}
	for i := range firstRules {
		r := &firstRules[i]
		if !r.match(t) {
			continue
		}
		text := r.Say
		if r.build != nil {
			text = r.build(t)
		}
		return Phrase{Text: text, RuleID: r.ID, Category: r.Category}
	}
	return defaultFirst(t)
}

// SecondTrait returns the PS question for raw, without the trailing "?".
func (p *Phraser) SecondTrait(raw string) Phrase {
	t := Parse(raw)
	if t.Empty() {
		return Phrase{Text: GenericQuestion, RuleID: rulePSGeneric, Category: CategoryUnclassified}
	}
	for i := range secondRules {
		r := &secondRules[i]
		if !r.match(t) {
			continue
		}
		vs := r.variants(t)
		return Phrase{Text: vs[p.pick(len(vs))], RuleID: r.ID, Category: r.Category}
	}
	return defaultSecond(t)
}

// SecondTraitVariants returns every question SecondTrait may produce for raw.
func (p *Phraser) SecondTraitVariants(raw string) []string {
	t := Parse(raw)
	if t.Empty() {
		return []string{GenericQuestion}
	}
	for i := range secondRules {
		r := &secondRules[i]
		if r.match(t) {
			return append([]string(nil), r.variants(t)...)
		}
	}
	return []string{defaultSecond(t).Text}
}

func (p *Phraser) pick(n int) int {
	i := p.sel.Pick(n)
	if i < 0 || i >= n {
		return 0
	}
	return i
}

// IsFallback reports whether ph came from the empty-trait or default row of
// the PS table rather than a specific rule.
func IsFallback(ph Phrase) bool {
	return ph.RuleID == rulePSGeneric || ph.RuleID == rulePSDefault
}

var defaultPhraser = NewPhraser(Seeded(uint64(time.Now().UnixNano())))

// PhraseForFirstTrait phrases raw with the process-wide phraser.
func PhraseForFirstTrait(raw string) string {
	return defaultPhraser.FirstTrait(raw).Text
}

// PhraseForSecondTrait phrases raw with the process-wide phraser, picking
// a random variant.
func PhraseForSecondTrait(raw string) string {
	return defaultPhraser.SecondTrait(raw).Text
}
