package snacks

import "strings"

// Category is one bucket of the fixed snack roster taxonomy.
type Category string

const (
	CategoryDrinks   Category = "drinks"
	CategoryDesserts Category = "desserts"
	CategoryMain     Category = "main"
	CategorySnacks   Category = "snacks"
	CategoryOther    Category = "other"
)

// rules is the ordered keyword ruleset. Order matters: the first category
// with a matching keyword wins, so "soda and chips" lands in drinks even
// though it also matches a snack keyword. Matching is case-insensitive
// substring containment. Classification is recomputed on every read, so
// editing this list reclassifies historical signups automatically.
var rules = []struct {
	category Category
	keywords []string
}{
	{CategoryDrinks, []string{"drink", "soda", "beer", "wine", "juice", "water"}},
	{CategoryDesserts, []string{"dessert", "cake", "cookie", "brownie", "ice cream", "candy"}},
	{CategoryMain, []string{"pizza", "wings", "sandwich", "tacos", "dinner", "main"}},
	{CategorySnacks, []string{"chips", "snack", "popcorn", "dip", "pretzels", "nuts"}},
}

// Categories lists every taxonomy bucket in display order.
var Categories = []Category{CategorySnacks, CategoryDrinks, CategoryDesserts, CategoryMain, CategoryOther}

// Classify maps a free-text "bringing" item to its taxonomy category.
func Classify(item string) Category {
	lowered := strings.ToLower(item)
	for _, rule := range rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.category
			}
		}
	}
	return CategoryOther
}

// Contribution is one guest's signup on the roster.
type Contribution struct {
	GuestName string `json:"guest_name"`
	Item      string `json:"item"`
}

// Roster is the coverage view over all signups for an event.
type Roster struct {
	Groups map[Category][]Contribution `json:"groups"`
	Total  int                         `json:"total"`
}

// BuildRoster groups contributions by category. Every category is present in
// the result, empty ones included, so the caller can render coverage gaps;
// Total of zero is the explicit "nothing signed up yet" state.
func BuildRoster(contributions []Contribution) Roster {
	groups := make(map[Category][]Contribution, len(Categories))
	for _, cat := range Categories {
		groups[cat] = []Contribution{}
	}

	for _, contribution := range contributions {
		cat := Classify(contribution.Item)
		groups[cat] = append(groups[cat], contribution)
	}

	return Roster{Groups: groups, Total: len(contributions)}
}
