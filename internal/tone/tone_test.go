package tone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allSections = []Section{SectionIntro, SectionBTW, SectionPS, SectionBody}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{"0": Standard, "2": Light, "level3": Medium, " Level4 ": Heavy} {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"1", "level1", "5", "-1", "", "heavy"} {
		_, err := ParseLevel(in)
		require.ErrorIs(t, err, ErrUnknownLevel, in)
	}
}

func TestScopeIsMonotonic(t *testing.T) {
	assert.Empty(t, Scope(Standard))
	assert.Equal(t, []Section{SectionBTW}, Scope(Light))
	assert.Equal(t, []Section{SectionBTW, SectionPS}, Scope(Medium))
	assert.Equal(t, []Section{SectionIntro, SectionBTW, SectionPS}, Scope(Heavy))

	for i := 1; i < len(Levels); i++ {
		lower, higher := Levels[i-1], Levels[i]
		for _, s := range allSections {
			if Transforms(s, lower) {
				assert.True(t, Transforms(s, higher), "%s active at %s but not at %s", s, lower, higher)
			}
		}
	}
}

func TestApplyIdentityAtStandard(t *testing.T) {
	phrases := []string{
		"saw that you work at mindmusclesg, that's awesome",
		"How's traveling with the fam going",
		"Jet here btw, I saw that you were following a couple gym accounts, keep it up in the gym btw",
		"✅ a Personalised Diet Plan",
	}
	for _, p := range phrases {
		for _, s := range allSections {
			assert.Equal(t, p, Apply(p, s, Standard))
		}
	}
}

func TestBodyNeverTransformed(t *testing.T) {
	body := "They get:\n✅ a Personalised Diet Plan\n✅ Telegram Chat Support"
	for _, l := range Levels {
		assert.Equal(t, body, Apply(body, SectionBody, l))
	}
}

func TestApplyBTW(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"saw that you work at mindmusclesg, that's awesome", "saw that you work at mindmusclesg, that's awesome sia"},
		{"saw that you're into anime, love it haha", "saw that you're into anime, sibei nice leh"},
		{"saw your cycling adventures, pedal power", "saw your cycling adventures, pedal power sia"},
		{"saw that you're a sales manager, impressive", "saw that you're a sales manager, impressive lah"},
		{"love your profile, keep it up!", "love your profile, keep it up lah!"},
		{"something nobody wrote", "something nobody wrote"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Apply(tc.in, SectionBTW, Light))
		assert.Equal(t, tc.want, Apply(tc.in, SectionBTW, Heavy))
	}
}

func TestApplyPS(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"How's traveling with the fam going", "How's traveling with the fam going ah"},
		{"Where's the next family trip headed", "Where's the next family trip headed ah"},
		{"What camera do you shoot with", "What camera do you shoot with ah"},
		{"Found any good bars lately", "Found any good bars lately or not"},
		{"Your style is always on point - any fashion recommendations", "Your style is always on point - any fashion recommendations"},
		{"However you like", "However you like"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Apply(tc.in, SectionPS, Medium))
	}
	assert.Equal(t, "How's work", Apply("How's work", SectionPS, Light))
}

func TestApplyIntro(t *testing.T) {
	in := "Jet here btw, I saw that you were following a couple gym accounts, keep it up in the gym btw"
	want := "Jet here lah, I saw that you were following a couple gym accounts, keep it up in the gym ah"
	assert.Equal(t, in, Apply(in, SectionIntro, Medium))
	assert.Equal(t, want, Apply(in, SectionIntro, Heavy))

	followup := "Bob here, i'm not too sure if my friend Jet has reached out to you yet"
	assert.Equal(t, "Bob here lah, i'm not too sure if my friend Jet has reached out to you yet", Apply(followup, SectionIntro, Heavy))
}

func TestApplyNeverEmpty(t *testing.T) {
	inputs := []string{"a", "How", "Found", " ", "power", "???"}
	for _, in := range inputs {
		for _, l := range Levels {
			for _, s := range allSections {
				assert.NotEqual(t, "", Apply(in, s, l))
			}
		}
	}
	assert.Equal(t, "", Apply("", SectionBTW, Heavy))
}
