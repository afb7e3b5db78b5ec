package questions

// Category represents a game category — the shape of question a session serves.
type Category string

const (
	CategoryAddition       Category = "addition"
	CategorySubtraction    Category = "subtraction"
	CategoryMultiplication Category = "multiplication"
	CategoryDivision       Category = "division"
	CategoryMixedAddSub    Category = "mixed_add_sub"
	CategoryMixedMultAdd   Category = "mixed_mult_add"
	CategoryAllMixed       Category = "all_mixed"

	// CategoryChallenge is a meta-category: it has no question shape of its
	// own and resolves to a concrete sub-category and sub-difficulty per
	// attempt (see challenge.go).
	CategoryChallenge Category = "challenge"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryAddition,
		CategorySubtraction,
		CategoryMultiplication,
		CategoryDivision,
		CategoryMixedAddSub,
		CategoryMixedMultAdd,
		CategoryAllMixed,
		CategoryChallenge,
	}
}

// CategoryDisplayName returns the label shown to the player.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryAddition:
		return "Sumas"
	case CategorySubtraction:
		return "Restas"
	case CategoryMultiplication:
		return "Tablas"
	case CategoryDivision:
		return "División"
	case CategoryMixedAddSub:
		return "Suma y Resta"
	case CategoryMixedMultAdd:
		return "Mult + Oper"
	case CategoryAllMixed:
		return "Experto"
	case CategoryChallenge:
		return "Desafío Mix"
	default:
		return string(c)
	}
}
