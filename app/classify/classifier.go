// Package classify assigns menu items to a fixed set of category labels
// using ordered keyword rules. Section names from the marketplace are often
// generic ("Popularno", "Preporučeno"), so the item name is the effective
// signal for most items.
package classify

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is one of the five closed category names stored in the category
// table. The classifier never produces a value outside this set.
type Category string

const (
	CategoryDrink   Category = "Piće"
	CategorySalad   Category = "Salate"
	CategorySide    Category = "Prilozi"
	CategoryDessert Category = "Desert"
	CategoryMain    Category = "Glavno jelo"
)

// ItemType maps a category to the item type column value.
func (c Category) ItemType() string {
	if c == CategoryDrink {
		return "drink"
	}
	return "food"
}

// sectionRules are evaluated in order; first match wins. CategoryMain is the
// fallback when no rule matches, not a positive signal.
var sectionRules = []struct {
	keywords []string
	category Category
}{
	{[]string{"pić", "pice", "drink", "beverage", "sok", "vino", "pivo", "kava", "čaj", "caj"}, CategoryDrink},
	{[]string{"salat"}, CategorySalad},
	// Both stems are needed: "prilog" (singular) and "priloz" (plural
	// "prilozi" and its inflections).
	{[]string{"prilog", "priloz", "side", "pomfrit", "krumpir", "umak", "sos", "dip", "krumpirići"}, CategorySide},
	{[]string{"desert", "dessert", "kolač", "kolac", "torta", "slatko", "palač", "palac", "sladoled",
		"nutella", "lino", "lino lada", "voće", "voce"}, CategoryDessert},
}

// Item-name keyword groups. Main-dish keywords outrank everything else:
// combo items ("Burger meni + cola") routinely mention a drink or side and
// must not be misfiled. The "+" is treated as a combo separator.
var (
	mainKeywords = []string{
		"menu", "meni", "combo", "obrok", "meal", "box", "bucket",
		"odrezak", "bečki", "becki", "pohano", "pohana", "šnicl", "snicl",
		"pilet", "file", "batak", "krilc",
		"burger", "pizza", "sendvič", "sendvic", "wrap", "tortil", "burrito",
		"kebab", "ćevap", "cevap", "pljeskavic", "steak", "ramstek",
		"tjesten", "pasta", "rižot", "rizot", "gulaš", "gulas", "lasagn",
	}

	drinkKeywords = []string{
		"coca", "cola", "fanta", "sprite", "voda", "sok", "juice",
		"pivo", "vino", "kava", "espresso", "latte", "cappuccino", "čaj", "caj",
		"tonic", "red bull", "energets", "iced",
	}

	sideKeywords  = []string{"pomfrit", "krumpir", "prilog", "priloz", "side", "umak", "sos", "dip", "ketchup", "majonez"}
	saladKeywords = []string{"salat"}

	dessertKeywords = []string{
		"sladoled", "kolač", "kolac", "torta", "dessert", "desert", "palač", "palac",
		"brownie", "muffin", "cookie",
		"nutella", "lino lada", "lino", "voće", "voce", "čokolad", "cokolad", "namaz", "cake",
	}
)

var lowerHR = cases.Lower(language.Croatian)

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// SectionCategory derives a category hint from the menu section name.
// Returns CategoryMain when the section gives no usable signal.
func SectionCategory(sectionName string) Category {
	s := lowerHR.String(sectionName)

	for _, rule := range sectionRules {
		if containsAny(s, rule.keywords) {
			return rule.category
		}
	}

	return CategoryMain
}

// Classify maps a (section name, item name) pair to a category. Pure and
// deterministic; section metadata overrides item-name inference when it
// carries an actual signal.
func Classify(sectionName, itemName string) Category {
	if sectionCat := SectionCategory(sectionName); sectionCat != CategoryMain {
		return sectionCat
	}

	s := lowerHR.String(itemName)

	hasMain := containsAny(s, mainKeywords)
	hasDrink := containsAny(s, drinkKeywords)
	hasSide := containsAny(s, sideKeywords)
	hasSalad := containsAny(s, saladKeywords)
	hasDessert := containsAny(s, dessertKeywords)
	hasCombo := strings.Contains(s, "+")

	// 1) Main-dish signal wins even when a drink or side is mentioned.
	if hasMain {
		return CategoryMain
	}

	// 2) A "+"-joined combo defaults to main, unless it is purely a
	// drink-with-drink combo ("Cola + Fanta").
	if hasCombo {
		if hasDrink && !hasSide && !hasSalad && !hasDessert {
			return CategoryDrink
		}
		return CategoryMain
	}

	// 3) Salads / desserts
	if hasSalad {
		return CategorySalad
	}
	if hasDessert {
		return CategoryDessert
	}

	// 4) Sides, but only when no drink is mentioned
	if hasSide && !hasDrink {
		return CategorySide
	}

	// 5) Drinks
	if hasDrink {
		return CategoryDrink
	}

	return CategoryMain
}
