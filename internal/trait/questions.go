package trait

const patStyle = `stylish|cool|awesome|nice|great|sharp`

// secondRules is the PS table. Each row yields a set of question variants
// without the trailing "?"; the phraser picks one.
var secondRules = compileRules([]rule{
	{ID: "ps_promoting_work", Category: CategoryProfession, All: []string{`promot`, `work|business`},
		Example: "promotes his work",
		Variants: []string{
			"Your hustle is inspiring! How's business been going lately",
			"Love seeing you promote your work - what's the biggest win so far",
			"How do you balance promoting your business with everything else",
		}},
	{ID: "ps_business_owner", Category: CategoryProfession, All: []string{`business owner|entrepreneur`},
		Example: "entrepreneur",
		Variants: []string{
			"How's the entrepreneurial journey treating you",
			"What's the most rewarding part of running your own business",
			"Found your business idea while working somewhere else",
		}},
	{ID: "ps_content_creator", Category: CategoryProfession, All: []string{`content creator`},
		Example: "content creator (tt/@gibsaw)",
		Variants: []string{
			"How do you come up with new content ideas",
			"What's your favorite type of content to create",
			"How long have you been creating content for",
		}},
	{ID: "ps_work_at", Category: CategoryProfession, All: []string{patWorkAt, patAt}, None: []string{patWorkout},
		Example: "works at (ig/mindmusclesg)",
		buildVariants: func(t Trait) []string {
			place := t.Handle
			if place == "" {
				place = workplace(t, "your workplace")
			}
			return []string{
				"How long have you been working at " + place + " for",
				"How's work at " + place + " been treating you",
				"What do you enjoy most about working at " + place,
			}
		}},
	{ID: "ps_married", Category: CategoryRelationship, All: []string{`married`},
		Example: "married",
		Variants: []string{
			"How's married life treating you",
			"How long have you been married for",
			"What's the best part of married life so far",
		}},
	{ID: "ps_engaged", Category: CategoryRelationship, All: []string{`engaged`},
		Example: "just got engaged",
		Variants: []string{
			"How's the wedding planning going",
			"When's the big day",
			"How did the proposal go",
		}},
	{ID: "ps_cat", Category: CategoryRelationship, All: []string{`\bcats?\b`, `\b(has|have|pet|love|loves|owner)\b`},
		Example: "has a cat",
		Variants: []string{
			"What's your cat's name",
			"How long have you had your cat for",
			"How's your cat doing",
		}},
	{ID: "ps_dog", Category: CategoryRelationship, All: []string{`\bdogs?\b`, `\b(has|have|pet|love|loves|owner)\b`},
		Example: "loves his dog",
		Variants: []string{
			"What's your dog's name",
			"How long have you had your dog for",
			"How's your dog doing",
		}},
	{ID: "ps_kids", Category: CategoryRelationship, All: []string{`babies|\bbaby\b|\bkids?\b|children`}, None: []string{`travel`},
		Example: "has kids",
		Variants: []string{
			"How's parenthood treating you",
			"How old are your little ones now",
			"What's the best part about being a parent",
		}},
	{ID: "ps_fitness", Category: CategoryFitness, All: []string{`fitness|\bgym\b|workout|bodybuild|powerlift|crossfit|lifting`},
		Example: "powerlifting",
		Variants: []string{
			"How's your fitness journey going",
			"What's your current training split like",
			"How's the gym progress coming along",
		}},
	{ID: "ps_travel_family", Category: CategoryLifestyle, All: []string{`travel`, `\bfam(ily)?\b|\bkids\b|wife|husband|parents`},
		Example: "traveling with fam",
		Variants: []string{
			"How's traveling with the fam going",
			"Where's the next family trip headed",
			"What's been the best family trip so far",
		}},
	{ID: "ps_food", Category: CategoryLifestyle, All: []string{`noodle|foodie|food`},
		Example: "loves noodles",
		Variants: []string{
			"What's your favorite local food spot",
			"Found any hidden food gems lately",
			"What's the best thing you've eaten recently",
		}},
	{ID: "ps_drinks", Category: CategoryLifestyle, All: []string{`cocktail|beer|drinks`},
		Example: "cocktails",
		Variants: []string{
			"What's your go-to drink",
			"Found any good bars lately",
			"Where's your favorite place to grab drinks",
		}},
	{ID: "ps_photography", Category: CategoryLifestyle, All: []string{`photograph`},
		Example: "photography",
		Variants: []string{
			"What got you into photography",
			"What camera do you shoot with",
			"What's your favorite thing to photograph",
		}},
	{ID: "ps_travel", Category: CategoryLifestyle, All: []string{`travel`},
		Example: "loves traveling",
		Variants: []string{
			"Where's your next travel destination",
			"What's been your favorite trip so far",
			"How many countries have you been to",
		}},
	{ID: "ps_studied_law", Category: CategoryEducation, All: []string{`\bstud`, `\blaw\b`},
		Example: "studied smu law",
		Variants: []string{
			"What made you choose law",
			"How did you find studying law",
			"What area of law interests you most",
		}},
	{ID: "ps_polo", Category: CategoryFashion, All: []string{`\bpolo`, patStyle},
		Example: "nice polo",
		Variants: []string{
			"Where did you get that polo from",
			"That polo looks sharp! What brand is it",
			"Love the polo - got any style tips",
		}},
	{ID: "ps_tshirt", Category: CategoryFashion, All: []string{`t-?shirt|t shirt|shirt`, patStyle},
		Example: "cool tshirt",
		Variants: []string{
			"Where did you get that tshirt from",
			"That tshirt is clean! What brand is it",
			"Love the tshirt - where do you usually shop",
		}},
	{ID: "ps_puffer_jacket", Category: CategoryFashion, All: []string{`puffer`},
		Example: "stylish puffer jacket",
		Variants: []string{
			"Where did you get that puffer jacket from",
			"That puffer looks so warm! What brand is it",
			"How do you survive the heat in a puffer",
		}},
	{ID: "ps_jacket", Category: CategoryFashion, All: []string{`jacket`, patStyle},
		Example: "stylish jacket",
		Variants: []string{
			"That jacket is fire bro - where'd you get it from",
			"Your jacket game is next level! What brand is that",
			"Where did you get that stylish jacket",
		}},
	{ID: "ps_sweater", Category: CategoryFashion, All: []string{`sweater`, patStyle},
		Example: "cozy sweater and cool look",
		Variants: []string{
			"Where did you get that sweater from",
			"That sweater looks cozy! What brand is it",
			"How do you stay so cozy and stylish",
		}},
	{ID: "ps_coat", Category: CategoryFashion, All: []string{`\bcoat`},
		Example: "long coat",
		Variants: []string{
			"Where did you get that coat from",
			"That coat looks classy! What brand is it",
			"Where do you usually shop for coats",
		}},
	{ID: "ps_jeans", Category: CategoryFashion, All: []string{`jeans`, patStyle},
		Example: "nice jeans",
		Variants: []string{
			"Where did you get those jeans from",
			"Those jeans fit well! What brand are they",
			"What's your go-to jeans brand",
		}},
	{ID: "ps_sunglasses", Category: CategoryFashion, All: []string{`sunglasses|shades`},
		Example: "sunglasses",
		Variants: []string{
			"Where did you get those sunglasses from",
			"Those sunglasses are so cool! What brand are they",
			"What's your favorite sunglasses brand",
		}},
	{ID: "ps_glasses", Category: CategoryFashion, All: []string{`glasses`}, None: []string{`sunglasses`},
		Example: "glasses",
		Variants: []string{
			"Where did you get those glasses from",
			"Those glasses suit you! What brand are they",
			"How long have you been wearing glasses",
		}},
	{ID: "ps_cap", Category: CategoryFashion, All: []string{`\bcaps?\b`, patStyle},
		Example: "cool cap",
		Variants: []string{
			"Where did you get that cap from",
			"That cap is clean! What brand is it",
			"How many caps do you own",
		}},
	{ID: "ps_beanie", Category: CategoryFashion, All: []string{`beanie`, patStyle},
		Example: "nice beanie",
		Variants: []string{
			"Where did you get that beanie from",
			"That beanie looks cozy! What brand is it",
			"How many beanies do you own",
		}},
	{ID: "ps_watch", Category: CategoryFashion, All: []string{`\bwatch`, patStyle},
		Example: "nice watch",
		Variants: []string{
			"What watch is that you're wearing",
			"Where did you get that watch from",
			"How long have you been into watches",
		}},
	{ID: "ps_beard", Category: CategoryFashion, All: []string{`beard`, patStyle},
		Example: "nice beard",
		Variants: []string{
			"How long did it take to grow that beard",
			"What's your beard care routine",
			"Where do you get your beard trimmed",
		}},
	{ID: "ps_hair", Category: CategoryFashion, All: []string{`hairstyle|haircut`, patStyle},
		Example: "cool haircut",
		Variants: []string{
			"Where do you get your haircut",
			"Which barber do you go to",
			"How long have you had that hairstyle",
		}},
	{ID: "ps_appearance", Category: CategoryFashion, All: []string{patStyle, `\b(look|looks|style|outfit|fashion|dressed)\b`},
		Example: "stylish look",
		Variants: []string{
			"Where do you usually shop for clothes",
			"Your style is always on point! Any fashion tips",
			"What's your favorite fashion brand",
		}},

	// Keyword-family fallbacks
	{ID: "ps_appearance_family", Category: CategoryFashion,
		All:      []string{`stylish|outfit|fashion|jacket|shirt|hoodie|\bdress|shoes|sneaker|\bhats?\b|\bcap\b|hair|beard|tattoo|smile`},
		Example:  "hoodie",
		Variants: []string{"Your style is always on point - any fashion recommendations"}},
	{ID: "ps_profession_family", Category: CategoryProfession,
		All:      []string{`\b(work|works|working|job|career|office|company|business|manager|engineer|doctor|teacher|nurse|lawyer|designer|developer|consultant|agent)\b`},
		Example:  "software engineer",
		Variants: []string{"How's work been treating you lately"}},
	{ID: "ps_hobby_family", Category: CategoryLifestyle,
		All:      []string{`\b(hobby|hobbies|sport|sports|music|gaming|games|reading|art|painting|dancing|cooking|hiking|running|cycling|swimming|football|basketball|tennis|badminton|yoga|climbing|surfing|golf)\b`},
		Example:  "rock climbing",
		Variants: []string{"Been enjoying your interests lately? Always good to make time for what you love"}},
})

const (
	rulePSGeneric = "ps_generic"
	rulePSDefault = "ps_default"
)

func defaultSecond(t Trait) Phrase {
	return Phrase{Text: "How's your " + t.Display + " going", RuleID: rulePSDefault, Category: CategoryUnclassified}
}

// SecondRules lists the PS table in evaluation order.
func SecondRules() []RuleInfo {
	return ruleInfos(secondRules)
}

func (r *rule) variants(t Trait) []string {
	if r.buildVariants != nil {
		return r.buildVariants(t)
	}
	return r.Variants
}
