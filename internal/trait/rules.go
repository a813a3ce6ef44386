package trait

import (
	"regexp"
	"strings"
)

// rule is one row of an ordered rule table. A rule matches when every
// pattern in All matches, no pattern in None matches and, if Handle is set,
// the trait carries a handle. Patterns are case-insensitive and unanchored.
type rule struct {
	ID       string
	Category Category
	All      []string
	None     []string
	Handle   bool
	Example  string

	// Say is the fixed output; build overrides it when set.
	Say   string
	build func(Trait) string

	// Variants and buildVariants are used by question rules.
	Variants      []string
	buildVariants func(Trait) []string

	all  []*regexp.Regexp
	none []*regexp.Regexp
}

func (r *rule) match(t Trait) bool {
	if r.Handle && !t.HasHandle() {
		return false
	}
	for _, re := range r.all {
		if !re.MatchString(t.Text) {
			return false
		}
	}
	for _, re := range r.none {
		if re.MatchString(t.Text) {
			return false
		}
	}
	return true
}

func compileRules(rules []rule) []rule {
	for i := range rules {
		rules[i].all = compilePatterns(rules[i].All)
		rules[i].none = compilePatterns(rules[i].None)
	}
	return rules
}

func compilePatterns(patterns []string) []*regexp.Regexp {
	if len(patterns) == 0 {
		return nil
	}
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile("(?i)" + p)
	}
	return out
}

func ruleInfos(rules []rule) []RuleInfo {
	out := make([]RuleInfo, len(rules))
	for i, r := range rules {
		out[i] = RuleInfo{ID: r.ID, Category: r.Category, Example: r.Example}
	}
	return out
}

const (
	patWorkAt  = `\bwork(s|ing)?\b`
	patAt      = `\bat\b`
	patWorkout = `workout|homework`
)

var reAfterAt = regexp.MustCompile(`(?i)\bat\s+(.+)$`)

// workplace returns what follows "at" in the trait, without any handle.
func workplace(t Trait, fallback string) string {
	if m := reAfterAt.FindStringSubmatch(t.Display); len(m) == 2 {
		if w := strings.TrimSpace(m[1]); w != "" {
			return w
		}
	}
	return fallback
}

// firstRules is the BTW table. Order matters: rows needing a handle come
// first, then compound rows ahead of their single-keyword parts.
var firstRules = compileRules([]rule{
	// Handles
	{ID: "btw_work_at_handle", Category: CategoryProfession, All: []string{patWorkAt, patAt}, None: []string{patWorkout}, Handle: true,
		Example: "works at (ig/mindmusclesg)",
		build: func(t Trait) string { return "saw that you work at " + t.Handle + ", that's awesome" }},
	{ID: "btw_business_handle", Category: CategoryProfession, All: []string{`business`}, Handle: true,
		Example: "owns a business (kopi.sg)",
		build: func(t Trait) string { return "saw that you own " + t.Handle + ", business success" }},
	{ID: "btw_content_creator_handle", Category: CategoryProfession, All: []string{`content creator`}, Handle: true,
		Example: "content creator (tt/@gibsaw)",
		build: func(t Trait) string { return "saw that you're a content creator at " + t.Handle + ", creative genius" }},

	// Compounds
	{ID: "btw_married_babies", Category: CategoryRelationship, All: []string{`married`, `\bbab(y|ies)\b`},
		Example: "married with babies", Say: "saw that you're married with babies, family man"},
	{ID: "btw_powerlifting_athlete", Category: CategoryFitness, All: []string{`powerlift`, `athlete`},
		Example: "powerlifting athlete", Say: "saw that you're a powerlifting athlete, strength champion"},
	{ID: "btw_bodybuilding_athlete", Category: CategoryFitness, All: []string{`bodybuild`, `athlete`},
		Example: "bodybuilding athlete", Say: "saw that you're a bodybuilding athlete, muscle master"},

	// Fitness and sport
	{ID: "btw_fitness", Category: CategoryFitness, All: []string{`fitness`},
		Example: "fitness", Say: "saw that you're into fitness, love the dedication"},
	{ID: "btw_bodybuilding", Category: CategoryFitness, All: []string{`bodybuild`},
		Example: "bodybuilding", Say: "saw your bodybuilding journey, beast mode"},
	{ID: "btw_powerlifting", Category: CategoryFitness, All: []string{`powerlift`},
		Example: "powerlifting", Say: "saw your powerlifting skills, strength king"},
	{ID: "btw_crossfit", Category: CategoryFitness, All: []string{`crossfit`},
		Example: "does crossfit", Say: "saw your crossfit grind, beast mode"},
	{ID: "btw_swimming", Category: CategoryFitness, All: []string{`\bswim`},
		Example: "swimming", Say: "saw that you're into swimming, aquatic ace"},
	{ID: "btw_athlete", Category: CategoryFitness, All: []string{`athlete`},
		Example: "athlete", Say: "saw that you're an athlete, sports warrior"},
	{ID: "btw_muay_thai", Category: CategoryFitness, All: []string{`muay thai`},
		Example: "muay thai", Say: "saw your muay thai training, fighter spirit"},
	{ID: "btw_boxing", Category: CategoryFitness, All: []string{`\bbox(ing|er)\b`},
		Example: "boxing", Say: "saw your boxing training, fighter spirit"},
	{ID: "btw_cycling", Category: CategoryFitness, All: []string{`cycling|\bbik(e|es|ing)\b`},
		Example: "cycling", Say: "saw your cycling adventures, pedal power"},
	{ID: "btw_climbing", Category: CategoryFitness, All: []string{`climb`},
		Example: "rock climbing", Say: "saw your climbing skills, scaling heights"},
	{ID: "btw_running", Category: CategoryFitness, All: []string{`\b(running|runner|marathon|jogging)\b|\brun\b`},
		Example: "marathon running", Say: "saw that you're into running, cardio king"},
	{ID: "btw_taekwondo", Category: CategoryFitness, All: []string{`taekwondo`},
		Example: "taekwondo", Say: "saw your taekwondo skills, martial arts master"},
	{ID: "btw_fencing", Category: CategoryFitness, All: []string{`fencing`},
		Example: "fencing", Say: "saw your fencing skills, sword master"},
	{ID: "btw_rowing", Category: CategoryFitness, All: []string{`\browing`},
		Example: "rowing", Say: "saw your rowing training, water warrior"},
	{ID: "btw_surfing", Category: CategoryFitness, All: []string{`\bsurf`},
		Example: "surfing", Say: "saw that you're into surfing, wave rider"},
	{ID: "btw_bowling", Category: CategoryFitness, All: []string{`bowling`},
		Example: "bowling", Say: "saw your bowling skills, strike master"},
	{ID: "btw_diving", Category: CategoryFitness, All: []string{`scuba|\bdiv(e|ing)\b`},
		Example: "scuba diving", Say: "saw your diving adventures, underwater explorer"},
	{ID: "btw_yoga", Category: CategoryFitness, All: []string{`\byoga\b`},
		Example: "yoga", Say: "saw that you're into yoga, zen mode"},
	{ID: "btw_hiking", Category: CategoryFitness, All: []string{`\bhik(e|es|ing)\b|trekking`},
		Example: "hiking", Say: "saw your hiking adventures, trail blazer"},
	{ID: "btw_badminton", Category: CategoryFitness, All: []string{`badminton`},
		Example: "badminton", Say: "saw your badminton skills, smash king"},
	{ID: "btw_basketball", Category: CategoryFitness, All: []string{`basketball`},
		Example: "basketball", Say: "saw your basketball game, court king"},
	{ID: "btw_football", Category: CategoryFitness, All: []string{`football|soccer|futsal`},
		Example: "plays football", Say: "saw your football skills, pitch master"},
	{ID: "btw_tennis", Category: CategoryFitness, All: []string{`tennis`},
		Example: "tennis", Say: "saw your tennis game, ace server"},
	{ID: "btw_golf", Category: CategoryFitness, All: []string{`\bgolf`},
		Example: "golf", Say: "saw your golf game, fairway pro"},
	{ID: "btw_gym", Category: CategoryFitness, All: []string{`\bgym\b`},
		Example: "gym selfies", Say: "saw your gym grind, gym warrior"},

	// Profession
	{ID: "btw_work_at", Category: CategoryProfession, All: []string{patWorkAt, patAt}, None: []string{patWorkout},
		Example: "works at dbs bank",
		build: func(t Trait) string { return "saw that you work at " + workplace(t, "your company") + ", that's awesome" }},
	{ID: "btw_business_owner", Category: CategoryProfession, All: []string{`business owner`},
		Example: "business owner", Say: "saw that you're a business owner, entrepreneur vibes"},
	{ID: "btw_co_founder", Category: CategoryProfession, All: []string{`co[ -]?founder`},
		Example: "co founder", Say: "saw that you're a co founder, entrepreneurial spirit"},
	{ID: "btw_engineer", Category: CategoryProfession, All: []string{`engineer`},
		Example: "software engineer", Say: "saw that you're an engineer, tech genius"},
	{ID: "btw_teacher", Category: CategoryProfession, All: []string{`\bteach`},
		Example: "teacher", Say: "saw that you're a teacher, noble profession"},
	{ID: "btw_doctor", Category: CategoryProfession, All: []string{`doctor`},
		Example: "doctor", Say: "saw that you're a doctor, life saver"},
	{ID: "btw_nurse", Category: CategoryProfession, All: []string{`\bnurs(e|es|ing)\b`},
		Example: "nurse", Say: "saw that you're a nurse, healthcare hero"},
	{ID: "btw_health_worker", Category: CategoryProfession, All: []string{`health ?worker`},
		Example: "health worker", Say: "saw that you're a health worker, respect for the service"},
	{ID: "btw_physio", Category: CategoryProfession, All: []string{`physio`},
		Example: "physiotherapist", Say: "saw that you're a physiotherapist, healing hands"},
	{ID: "btw_fire_rescue", Category: CategoryProfession, All: []string{`\bfire|rescue`},
		Example: "firefighter", Say: "saw that you're in fire rescue, hero status"},
	{ID: "btw_police", Category: CategoryProfession, All: []string{`police`},
		Example: "police officer", Say: "saw that you're a police officer, keeping us safe"},
	{ID: "btw_chef", Category: CategoryProfession, All: []string{`\bchef`},
		Example: "chef", Say: "saw that you're a chef, culinary master"},
	{ID: "btw_barber", Category: CategoryProfession, All: []string{`barber`},
		Example: "barber", Say: "saw that you're a barber, style creator"},
	{ID: "btw_dj", Category: CategoryProfession, All: []string{`\bdj\b`},
		Example: "dj", Say: "saw that you're a DJ, music maestro"},
	{ID: "btw_photographer", Category: CategoryProfession, All: []string{`photographer`},
		Example: "photographer", Say: "saw your photography skills, artistic eye"},
	{ID: "btw_photography", Category: CategoryProfession, All: []string{`photography`},
		Example: "photography", Say: "saw your photography work, artistic eye"},
	{ID: "btw_musician", Category: CategoryProfession, All: []string{`musician`},
		Example: "musician", Say: "saw your music talents, sound creator"},
	{ID: "btw_content_creator", Category: CategoryProfession, All: []string{`content creator`},
		Example: "content creator", Say: "saw that you're a content creator, creative genius"},
	{ID: "btw_financial_advisor", Category: CategoryProfession, All: []string{`financial (advisor|adviser|planner)`},
		Example: "financial advisor", Say: "saw that you're a financial advisor, money guru"},
	{ID: "btw_designer", Category: CategoryProfession, All: []string{`designer`},
		Example: "graphic designer", Say: "saw that you're a designer, creative talent"},
	{ID: "btw_real_estate", Category: CategoryProfession, All: []string{`real estate|property agent`},
		Example: "real estate agent", Say: "saw that you're a real estate agent, property pro"},

	// Education and military
	{ID: "btw_studied_smu_law", Category: CategoryEducation, All: []string{`\bstud`, `\bsmu\b`, `\blaw\b`},
		Example: "studied SMU law", Say: "saw that you studied SMU law, legal eagle"},
	{ID: "btw_studied_nus", Category: CategoryEducation, All: []string{`\bstud`, `\bnus\b`},
		Example: "studied at nus", Say: "saw that you studied NUS, impressive"},
	{ID: "btw_studied_ntu", Category: CategoryEducation, All: []string{`\bstud`, `\bntu\b`},
		Example: "studying in ntu", Say: "saw that you studied NTU, engineering pro"},
	{ID: "btw_student", Category: CategoryEducation, All: []string{`student`},
		Example: "student", Say: "saw that you're a student, knowledge seeker"},
	{ID: "btw_graduated", Category: CategoryEducation, All: []string{`graduat`},
		Example: "just graduated", Say: "saw that you just graduated, fresh start"},
	{ID: "btw_military", Category: CategoryEducation, All: []string{`\barmy\b|military|national service|\bns\b`},
		Example: "serving army", Say: "saw that you're serving in the army, soldier strong"},
	{ID: "btw_mba", Category: CategoryEducation, All: []string{`\bmba\b`},
		Example: "mba", Say: "saw your MBA, business leader"},
	{ID: "btw_phd", Category: CategoryEducation, All: []string{`\bphd\b`},
		Example: "phd", Say: "saw your PhD, academic superstar"},

	// Fashion and appearance
	{ID: "btw_jacket", Category: CategoryFashion, All: []string{`jacket`},
		Example: "stylish jacket", Say: "saw your stylish jacket, fashion game strong"},
	{ID: "btw_polo", Category: CategoryFashion, All: []string{`\bpolo`},
		Example: "nice polo", Say: "saw that cool polo, fresh style"},
	{ID: "btw_tshirt", Category: CategoryFashion, All: []string{`t-?shirt|t shirt|shirt`}, None: []string{`\bpolo`},
		Example: "nice tshirt", Say: "saw that nice tshirt, good taste"},
	{ID: "btw_coat", Category: CategoryFashion, All: []string{`\bcoat`},
		Example: "awesome coat", Say: "saw your awesome coat, winter ready"},
	{ID: "btw_suit", Category: CategoryFashion, All: []string{`\bsuits?\b`},
		Example: "wearing a suit", Say: "saw your elegant suit, classy vibes"},
	{ID: "btw_hoodie", Category: CategoryFashion, All: []string{`hoodie`},
		Example: "cool hoodie", Say: "saw that cool hoodie, streetwear king"},
	{ID: "btw_beanie", Category: CategoryFashion, All: []string{`beanie`},
		Example: "cute beanie", Say: "saw that nice beanie, cozy style"},
	{ID: "btw_sunglasses", Category: CategoryFashion, All: []string{`sunglasses|shades`},
		Example: "sunglasses", Say: "saw those cool shades, cool factor"},
	{ID: "btw_glasses", Category: CategoryFashion, All: []string{`glasses`},
		Example: "eyeglasses", Say: "saw your stylish glasses, intellectual look"},
	{ID: "btw_watch", Category: CategoryFashion, All: []string{`\bwatch`},
		Example: "awesome watch", Say: "saw that nice watch, timepiece game"},
	{ID: "btw_sneakers", Category: CategoryFashion, All: []string{`sneaker|shoes`},
		Example: "cool sneakers", Say: "saw those cool sneakers, shoe game fire"},
	{ID: "btw_cap", Category: CategoryFashion, All: []string{`\bcaps?\b`},
		Example: "nice cap", Say: "saw that cool cap, headgear game"},
	{ID: "btw_beard", Category: CategoryFashion, All: []string{`beard`},
		Example: "cool beard", Say: "saw that beard, grooming game strong"},
	{ID: "btw_car", Category: CategoryFashion, All: []string{`\bcars?\b`},
		Example: "nice car", Say: "saw your awesome ride, wheels on point"},

	// Lifestyle
	{ID: "btw_travel", Category: CategoryLifestyle, All: []string{`travel`},
		Example: "traveling with fam", Say: "saw your travel adventures, wanderlust strong"},
	{ID: "btw_food", Category: CategoryLifestyle, All: []string{`food|\beat(s|ing)?\b|noodle`},
		Example: "foodie", Say: "saw that you're a foodie, taste buds on point"},
	{ID: "btw_adventure", Category: CategoryLifestyle, All: []string{`adventur`},
		Example: "adventure seeker", Say: "saw your adventure posts, thrill seeker"},
	{ID: "btw_photo", Category: CategoryLifestyle, All: []string{`photo`},
		Example: "photos of sunsets", Say: "saw your photography skills, artistic vision"},
	{ID: "btw_cafe", Category: CategoryLifestyle, All: []string{`\bcafe`},
		Example: "cafe hopping", Say: "saw that you love cafes, coffee connoisseur"},
	{ID: "btw_coffee", Category: CategoryLifestyle, All: []string{`coffee`},
		Example: "coffee", Say: "saw your coffee obsession, caffeine king"},

	// Relationship and family
	{ID: "btw_married", Category: CategoryRelationship, All: []string{`married`},
		Example: "got married", Say: "saw that you got married, congratulations"},
	{ID: "btw_engaged", Category: CategoryRelationship, All: []string{`engaged`},
		Example: "got engaged", Say: "saw that you got engaged, congratulations"},
	{ID: "btw_kids", Category: CategoryRelationship, All: []string{`\bkids?\b|children|\bbab(y|ies)\b`},
		Example: "has kids", Say: "saw your family posts, family first"},
	{ID: "btw_dog", Category: CategoryRelationship, All: []string{`\bdogs?\b|\bpupp(y|ies)\b`},
		Example: "has a dog", Say: "saw that you have a dog, dog lover vibes"},
	{ID: "btw_cat", Category: CategoryRelationship, All: []string{`\bcats?\b|\bkittens?\b`},
		Example: "has a cat", Say: "saw that you have a cat, cat person vibes"},
})

// professionWords mark unmatched traits that read as a role, so the
// default phrase says "you're a/an X" instead of "you're into X".
var professionWords = regexp.MustCompile(`(?i)\b(worker|agent|manager|director|specialist|consultant|analyst|professional|designer|developer|engineer|doctor|lawyer|accountant|executive|officer|trainer|coach)s?\b|(ist|ian|eur)$`)

const (
	ruleFirstGeneric    = "btw_generic"
	ruleFirstProfession = "btw_default_profession"
	ruleFirstDefault    = "btw_default"
)

func defaultFirst(t Trait) Phrase {
	if professionWords.MatchString(t.Display) {
		return Phrase{
			Text:     "saw that you're " + Article(t.Display) + " " + t.Display + ", impressive",
			RuleID:   ruleFirstProfession,
			Category: CategoryProfession,
		}
	}
	return Phrase{
		Text:     "saw that you're into " + t.Display + ", love it haha",
		RuleID:   ruleFirstDefault,
		Category: CategoryUnclassified,
	}
}

// FirstRules lists the BTW table in evaluation order.
func FirstRules() []RuleInfo {
	return ruleInfos(firstRules)
}
