package trait

// Category is the classification of a trait.
type Category string

const (
	CategoryProfession   Category = "profession"
	CategoryFitness      Category = "fitness"
	CategoryFashion      Category = "fashion"
	CategoryLifestyle    Category = "lifestyle"
	CategoryRelationship Category = "relationship"
	CategoryEducation    Category = "education"
	CategoryUnclassified Category = "unclassified"
)

// Phrase is the output of the phraser along with the rule that produced it.
type Phrase struct {
	Text     string
	RuleID   string
	Category Category
}

// RuleInfo describes one row of a rule table.
type RuleInfo struct {
	ID       string
	Category Category
	// Example is a trait that the row is expected to win for.
	Example string
}
