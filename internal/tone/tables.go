package tone

import (
	"regexp"
	"sort"
	"strings"
)

// btwEndings maps the closing words of BTW compliments to their Singlish
// form. Longer endings are tried first so "pedal power" never falls to
// "power".
var btwEndings = sortedEndings([]ending{
	// Profession
	{"that's awesome", "that's awesome sia"},
	{"entrepreneur vibes", "entrepreneur vibes lah"},
	{"entrepreneurial spirit", "entrepreneurial spirit sia"},
	{"tech genius", "tech genius lah"},
	{"noble profession", "noble profession lah"},
	{"life saver", "life saver sia"},
	{"healthcare hero", "healthcare hero lah"},
	{"respect for the service", "respect for the service lah"},
	{"healing hands", "healing hands sia"},
	{"hero status", "hero status lah"},
	{"keeping us safe", "keeping us safe sia"},
	{"culinary master", "culinary master sia"},
	{"style creator", "style creator lah"},
	{"music maestro", "music maestro sia"},
	{"artistic eye", "artistic eye lah"},
	{"sound creator", "sound creator sia"},
	{"creative genius", "creative genius lah"},
	{"creative talent", "creative talent lah"},
	{"money guru", "money guru sia"},
	{"property pro", "property pro sia"},
	{"business success", "business success lah"},

	// Education
	{"legal eagle", "legal eagle sia"},
	{"impressive", "impressive lah"},
	{"engineering pro", "engineering pro sia"},
	{"knowledge seeker", "knowledge seeker lah"},
	{"fresh start", "fresh start sia"},
	{"soldier strong", "soldier strong lah"},
	{"business leader", "business leader sia"},
	{"academic superstar", "academic superstar lah"},

	// Fitness
	{"love the dedication", "love the dedication sia"},
	{"power", "power lah"},
	{"beast mode", "beast mode lah"},
	{"strength king", "strength king sia"},
	{"aquatic ace", "aquatic ace lah"},
	{"sports warrior", "sports warrior sia"},
	{"fighter spirit", "fighter spirit lah"},
	{"pedal power", "pedal power sia"},
	{"scaling heights", "scaling heights lah"},
	{"cardio king", "cardio king sia"},
	{"martial arts master", "martial arts master lah"},
	{"sword master", "sword master sia"},
	{"water warrior", "water warrior lah"},
	{"wave rider", "wave rider sia"},
	{"strike master", "strike master lah"},
	{"underwater explorer", "underwater explorer sia"},
	{"strength champion", "strength champion lah"},
	{"muscle master", "muscle master sia"},
	{"zen mode", "zen mode lah"},
	{"trail blazer", "trail blazer sia"},
	{"smash king", "smash king lah"},
	{"court king", "court king sia"},
	{"pitch master", "pitch master lah"},
	{"ace server", "ace server sia"},
	{"fairway pro", "fairway pro lah"},
	{"gym warrior", "gym warrior sia"},

	// Fashion
	{"fashion game strong", "fashion game strong lah"},
	{"fresh style", "fresh style sia"},
	{"good taste", "good taste lah"},
	{"winter ready", "winter ready sia"},
	{"classy vibes", "classy vibes lah"},
	{"streetwear king", "streetwear king sia"},
	{"cozy style", "cozy style lah"},
	{"cool factor", "cool factor sia"},
	{"intellectual look", "intellectual look lah"},
	{"timepiece game", "timepiece game sia"},
	{"shoe game fire", "shoe game fire lah"},
	{"headgear game", "headgear game sia"},
	{"grooming game strong", "grooming game strong lah"},
	{"wheels on point", "wheels on point sia"},

	// Lifestyle and family
	{"wanderlust strong", "wanderlust strong sia"},
	{"taste buds on point", "taste buds on point lah"},
	{"thrill seeker", "thrill seeker sia"},
	{"artistic vision", "artistic vision lah"},
	{"congratulations", "congratulations lah"},
	{"coffee connoisseur", "coffee connoisseur sia"},
	{"caffeine king", "caffeine king lah"},
	{"family man", "family man sia"},
	{"family first", "family first lah"},
	{"dog lover vibes", "dog lover vibes sia"},
	{"cat person vibes", "cat person vibes lah"},

	// Defaults
	{"love it haha", "sibei nice leh"},
	{"keep it up!", "keep it up lah!"},
})

type ending struct {
	from string
	to   string
}

func sortedEndings(in []ending) []ending {
	sort.SliceStable(in, func(i, j int) bool { return len(in[i].from) > len(in[j].from) })
	return in
}

func applyBTW(phrase string) string {
	lower := strings.ToLower(phrase)
	if len(lower) != len(phrase) {
		return phrase
	}
	for _, e := range btwEndings {
		if strings.HasSuffix(lower, e.from) {
			return phrase[:len(phrase)-len(e.from)] + e.to
		}
	}
	return phrase
}

// psParticles maps the opening word of a question to the particle that
// closes it.
var psParticles = map[string]string{
	"how":   " ah",
	"where": " ah",
	"what":  " ah",
	"found": " or not",
}

func applyPS(phrase string) string {
	word := phrase
	if i := strings.IndexAny(word, " '"); i >= 0 {
		word = word[:i]
	}
	particle, ok := psParticles[strings.ToLower(word)]
	if !ok || strings.HasSuffix(phrase, particle) {
		return phrase
	}
	return phrase + particle
}

var (
	reIntroBTW   = regexp.MustCompile(`^(\S+) here btw,`)
	reIntroPlain = regexp.MustCompile(`^(\S+) here,`)
	reGymBTW     = regexp.MustCompile(`keep it up in the gym btw$`)
)

func applyIntro(phrase string) string {
	out := reIntroBTW.ReplaceAllString(phrase, "$1 here lah,")
	out = reIntroPlain.ReplaceAllString(out, "$1 here lah,")
	return reGymBTW.ReplaceAllString(out, "keep it up in the gym ah")
}
