package trait

import (
	"strings"
	"testing"
)

func TestFirstRulesReachable(t *testing.T) {
	p := NewPhraser(FirstVariant())
	seen := map[string]bool{}
	for _, r := range FirstRules() {
		if seen[r.ID] {
			t.Fatalf("duplicate rule id %s", r.ID)
		}
		seen[r.ID] = true
		t.Run(r.ID, func(t *testing.T) {
			got := p.FirstTrait(r.Example)
			if got.RuleID != r.ID {
				t.Fatalf("example %q matched %s, want %s", r.Example, got.RuleID, r.ID)
			}
			if got.Category != r.Category {
				t.Fatalf("example %q category %s, want %s", r.Example, got.Category, r.Category)
			}
		})
	}
}

func TestSecondRulesReachable(t *testing.T) {
	p := NewPhraser(FirstVariant())
	seen := map[string]bool{}
	for _, r := range SecondRules() {
		if seen[r.ID] {
			t.Fatalf("duplicate rule id %s", r.ID)
		}
		seen[r.ID] = true
		t.Run(r.ID, func(t *testing.T) {
			if got := p.SecondTrait(r.Example); got.RuleID != r.ID {
				t.Fatalf("example %q matched %s, want %s", r.Example, got.RuleID, r.ID)
			}
		})
	}
}

func TestFirstTraitNeverEmptyOrTemplated(t *testing.T) {
	p := NewPhraser(FirstVariant())
	inputs := []string{"", "anime", "insurance agent", "works at", "(ig/foo)", "???"}
	for _, r := range FirstRules() {
		inputs = append(inputs, r.Example)
	}
	for _, in := range inputs {
		got := p.FirstTrait(in).Text
		if strings.TrimSpace(got) == "" {
			t.Fatalf("empty phrase for %q", in)
		}
		if strings.ContainsAny(got, "{}$") {
			t.Fatalf("placeholder left in %q for %q", got, in)
		}
	}
}

func TestFirstTraitPhrases(t *testing.T) {
	p := NewPhraser(nil)
	cases := []struct {
		in   string
		want string
	}{
		{"works at (ig/mindmusclesg)", "saw that you work at mindmusclesg, that's awesome"},
		{"works at dbs bank", "saw that you work at dbs bank, that's awesome"},
		{"Owns a business (kopi.sg)", "saw that you own kopi.sg, business success"},
		{"workout at the gym", "saw your gym grind, gym warrior"},
		{"stylish jacket", "saw your stylish jacket, fashion game strong"},
		{"studied SMU law", "saw that you studied SMU law, legal eagle"},
		{"married with babies", "saw that you're married with babies, family man"},
		{"anime (ig/otaku)", "saw that you're into anime, love it haha"},
		{"(ig/foo)", "saw that you're into foo, love it haha"},
		{"insurance agent", "saw that you're an insurance agent, impressive"},
		{"sales manager", "saw that you're a sales manager, impressive"},
		{"", GenericCompliment},
	}
	for _, tc := range cases {
		if got := p.FirstTrait(tc.in).Text; got != tc.want {
			t.Fatalf("FirstTrait(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCompoundBeatsParts(t *testing.T) {
	p := NewPhraser(nil)
	cases := []struct {
		compound string
		parts    []string
		ruleID   string
	}{
		{"powerlifting athlete", []string{"powerlifting", "athlete"}, "btw_powerlifting_athlete"},
		{"bodybuilding athlete", []string{"bodybuilding", "athlete"}, "btw_bodybuilding_athlete"},
		{"married with babies", []string{"married", "babies"}, "btw_married_babies"},
	}
	for _, tc := range cases {
		got := p.FirstTrait(tc.compound)
		if got.RuleID != tc.ruleID {
			t.Fatalf("%q matched %s, want %s", tc.compound, got.RuleID, tc.ruleID)
		}
		for _, part := range tc.parts {
			if single := p.FirstTrait(part).Text; single == got.Text {
				t.Fatalf("%q phrased the same as %q: %q", tc.compound, part, got.Text)
			}
		}
	}
}

func TestSecondTraitPicksKnownVariant(t *testing.T) {
	p := NewPhraser(Seeded(7))
	for _, in := range []string{"traveling with fam", "stylish jacket", "works at (ig/mindmusclesg)", "loves noodles"} {
		variants := p.SecondTraitVariants(in)
		if len(variants) < 2 {
			t.Fatalf("expected several variants for %q, got %v", in, variants)
		}
		for i := 0; i < 20; i++ {
			got := p.SecondTrait(in).Text
			if !contains(variants, got) {
				t.Fatalf("SecondTrait(%q) = %q, not in %v", in, got, variants)
			}
			if strings.HasSuffix(got, "?") {
				t.Fatalf("question should not carry '?': %q", got)
			}
		}
	}
}

func TestSecondTraitDefaults(t *testing.T) {
	p := NewPhraser(nil)
	cases := []struct {
		in     string
		want   string
		ruleID string
	}{
		{"", GenericQuestion, rulePSGeneric},
		{"anime", "How's your anime going", rulePSDefault},
		{"anime (ig/otaku)", "How's your anime going", rulePSDefault},
		{"hoodie", "Your style is always on point - any fashion recommendations", "ps_appearance_family"},
		{"works in finance", "How's work been treating you lately", "ps_profession_family"},
	}
	for _, tc := range cases {
		got := p.SecondTrait(tc.in)
		if got.Text != tc.want || got.RuleID != tc.ruleID {
			t.Fatalf("SecondTrait(%q) = %+v, want %q (%s)", tc.in, got, tc.want, tc.ruleID)
		}
	}
	if !IsFallback(p.SecondTrait("anime")) || IsFallback(p.SecondTrait("stylish jacket")) {
		t.Fatalf("unexpected IsFallback result")
	}
}

func TestSelectorClamped(t *testing.T) {
	p := NewPhraser(SelectorFunc(func(n int) int { return n + 5 }))
	variants := p.SecondTraitVariants("stylish jacket")
	if got := p.SecondTrait("stylish jacket").Text; got != variants[0] {
		t.Fatalf("expected clamped pick %q, got %q", variants[0], got)
	}
}

func TestSeededDeterministic(t *testing.T) {
	a, b := Seeded(42), Seeded(42)
	for i := 0; i < 50; i++ {
		if x, y := a.Pick(3), b.Pick(3); x != y {
			t.Fatalf("pick %d diverged: %d vs %d", i, x, y)
		}
	}
	if got := a.Pick(1); got != 0 {
		t.Fatalf("expected 0 for a single variant, got %d", got)
	}
}

func TestPackageLevelPhrasers(t *testing.T) {
	if got := PhraseForFirstTrait("stylish jacket"); got != "saw your stylish jacket, fashion game strong" {
		t.Fatalf("unexpected phrase %q", got)
	}
	if got := PhraseForSecondTrait("stylish jacket"); !contains(NewPhraser(nil).SecondTraitVariants("stylish jacket"), got) {
		t.Fatalf("unexpected question %q", got)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
