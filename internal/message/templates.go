package message

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownTemplate is returned by Lookup for ids not in the catalog.
var ErrUnknownTemplate = errors.New("message: unknown template")

// Shape selects the boilerplate layout of a template.
type Shape string

const (
	ShapeOutreach Shape = "outreach"
	ShapeFollowup Shape = "followup"
)

// DefaultTemplate is used when a caller passes an unknown id to the Assembler.
const DefaultTemplate = "company"

// Template is a sender persona plus the boilerplate around the phrases.
type Template struct {
	ID           string
	Name         string
	Sender       string
	Shape        Shape
	Friend       string
	FriendHandle string
	Description  string
}

var catalog = []Template{
	{ID: "company", Name: "Company Account (Jet)", Sender: "Jet", Shape: ShapeOutreach,
		Description: "first touch from the company account"},
	{ID: "max-company", Name: "Company Account (Max)", Sender: "Max", Shape: ShapeOutreach,
		Description: "first touch from Max's account"},
	{ID: "followup", Name: "Normal Follow-up (Bob)", Sender: "Bob", Shape: ShapeFollowup, Friend: "Jet",
		Description: "follow-up after Jet's first touch"},
	{ID: "bob-followup", Name: "Bob Follow-up", Sender: "Bob", Shape: ShapeFollowup, Friend: "Max", FriendHandle: "max_apolloss",
		Description: "follow-up after Max's first touch"},
	{ID: "matthew-followup", Name: "Matthew Follow-up", Sender: "Matthew", Shape: ShapeFollowup, Friend: "Max", FriendHandle: "max_apolloss",
		Description: "follow-up from Matthew after Max's first touch"},
}

// List returns the catalog in display order.
func List() []Template {
	return append([]Template(nil), catalog...)
}

// Lookup returns the template with the given id.
func Lookup(id string) (Template, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, t := range catalog {
		if t.ID == id {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, id)
}

func lookupOrDefault(id string) Template {
	if t, err := Lookup(id); err == nil {
		return t
	}
	t, _ := Lookup(DefaultTemplate)
	return t
}

// Services is the offer list. It is identical in every template and never
// localized.
const Services = "They get:\n" +
	"✅ a Personalised Diet Plan\n" +
	"✅ a Personalised Training Plan\n" +
	"✅ Telegram Chat Support\n" +
	"✅ Physical Form Correction\n" +
	"✅ To improve Mind Muscle Connection\n" +
	"✅ To make more progress with Less Time and Effort"

const (
	outreachBodyIntro = "I am currently looking for 5 people can join my free training project trial!"
	outreachOutro     = "To push them in the right direction this year 💪🏻\nDo you know anyone who may be interested?"
	followupBodyIntro = "but we are hosting a free training project trial, and 5 people can join us for free : )"
	followupOutro     = "To push them in the right direction this year 💪🏻\nWould you be opposed to taking a slot for yourself?"
)

type replacement struct {
	from string
	to   string
}

// Heavy-level rewrites of the boilerplate, applied once each.
var (
	heavyOutreach = []replacement{
		{"I am currently", "I currently"},
		{"can join", "can join in"},
		{"To push them in the right direction this year", "Help them level up this year"},
		{"Do you know anyone who may be interested?", "Got anyone interested or not?"},
	}
	heavyFollowup = []replacement{
		{"i'm not too sure if", "not sure if"},
		{"but we are hosting", "but we got"},
		{"can join us", "can join with us"},
		{"To push them in the right direction this year", "Help them level up this year"},
		{"Would you be opposed to taking a slot for yourself?", "Want to take one slot or not?"},
	}
)

func rewrite(s string, reps []replacement) string {
	for _, r := range reps {
		s = strings.Replace(s, r.from, r.to, 1)
	}
	return s
}

// Intro is the greeting line after "Hey {name}, ".
func (t Template) Intro() string {
	if t.Shape == ShapeFollowup {
		s := t.Sender + " here, i'm not too sure if my friend " + t.Friend + " has reached out to you yet"
		if t.FriendHandle != "" {
			s += ", @" + t.FriendHandle
		}
		return s
	}
	return t.Sender + " here btw, I saw that you were following a couple gym accounts, keep it up in the gym btw"
}

// BodyIntro introduces the offer.
func (t Template) BodyIntro() string {
	if t.Shape == ShapeFollowup {
		return followupBodyIntro
	}
	return outreachBodyIntro
}

// Outro closes the offer with the call to action.
func (t Template) Outro() string {
	if t.Shape == ShapeFollowup {
		return followupOutro
	}
	return outreachOutro
}

func (t Template) heavyRewrites() []replacement {
	if t.Shape == ShapeFollowup {
		return heavyFollowup
	}
	return heavyOutreach
}
