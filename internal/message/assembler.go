package message

import (
	"fmt"
	"strings"

	"github.com/leadsmith/leadsmith/internal/lead"
	"github.com/leadsmith/leadsmith/internal/tone"
	"github.com/leadsmith/leadsmith/internal/trait"
)

// Draft is a rendered message with the phrases that went into it.
type Draft struct {
	Text     string
	Template Template
	Level    tone.Level
	BTW      trait.Phrase
	PS       trait.Phrase
}

// Assembler renders leads into finished messages.
type Assembler struct {
	phraser *trait.Phraser
}

// NewAssembler returns an Assembler that phrases traits with p. A nil p
// always picks the first question variant.
func NewAssembler(p *trait.Phraser) *Assembler {
	if p == nil {
		p = trait.NewPhraser(nil)
	}
	return &Assembler{phraser: p}
}

// Render returns the message text for l.
func (a *Assembler) Render(l lead.Lead, templateID string, level tone.Level) string {
	return a.Compose(l, templateID, level).Text
}

// Compose renders l with the template named templateID at level. Unknown
// templates fall back to DefaultTemplate; invalid levels render as
// standard English.
func (a *Assembler) Compose(l lead.Lead, templateID string, level tone.Level) Draft {
	tpl := lookupOrDefault(templateID)
	if !level.Valid() {
		level = tone.Standard
	}
	btw, ps := a.phrases(l)

	btwText := tone.Apply(btw.Text, tone.SectionBTW, level)
	psText := tone.Apply(ps.Text, tone.SectionPS, level)
	if e := Emoji(psText); e != "" {
		psText += "?* " + e
	} else {
		psText += "?*"
	}

	intro := tone.Apply(tpl.Intro(), tone.SectionIntro, level)
	bodyIntro, outro := tpl.BodyIntro(), tpl.Outro()
	if level == tone.Heavy {
		reps := tpl.heavyRewrites()
		intro = rewrite(intro, reps)
		bodyIntro = rewrite(bodyIntro, reps)
		outro = rewrite(outro, reps)
	}
	body := tone.Apply(Services, tone.SectionBody, level)

	var text string
	if tpl.Shape == ShapeFollowup {
		text = fmt.Sprintf("Hey %s, %s\n%s\n\n%s\n\n%s\n\nPS: *%s : )",
			l.DisplayName(), intro, bodyIntro, body, outro, psText)
	} else {
		text = fmt.Sprintf("Hey %s, %s : )\n\nBTW, %s 👍\n\n%s\n\n%s\n\n%s\n\nPS: *%s : )",
			l.DisplayName(), intro, btwText, bodyIntro, body, outro, psText)
	}
	return Draft{Text: text, Template: tpl, Level: level, BTW: btw, PS: ps}
}

// phrases picks the BTW and PS phrases. When the second trait only yields
// a fallback question, a specific question for the first trait is used.
func (a *Assembler) phrases(l lead.Lead) (trait.Phrase, trait.Phrase) {
	first := strings.TrimSpace(l.FirstTrait)
	second := strings.TrimSpace(l.Second())

	btw := a.phraser.FirstTrait(first)
	ps := a.phraser.SecondTrait(second)
	if trait.IsFallback(ps) && first != "" && first != second {
		if alt := a.phraser.SecondTrait(first); !trait.IsFallback(alt) {
			ps = alt
		}
	}
	return btw, ps
}
