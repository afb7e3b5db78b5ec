package questions

// Difficulty represents a difficulty level. The five ordered levels form the
// progression ladder; DifficultyRandomTables sits outside the ladder and is
// used only for the multiplication-table free-practice mode.
type Difficulty string

const (
	DifficultyEasy       Difficulty = "easy"
	DifficultyEasyMedium Difficulty = "easy_medium"
	DifficultyMedium     Difficulty = "medium"
	DifficultyMediumHard Difficulty = "medium_hard"
	DifficultyHard       Difficulty = "hard"

	DifficultyRandomTables Difficulty = "random_tables"
)

// DifficultyOrder returns the ordered progression ladder, easiest first.
// DifficultyRandomTables is deliberately absent: it never locks or unlocks.
func DifficultyOrder() []Difficulty {
	return []Difficulty{
		DifficultyEasy,
		DifficultyEasyMedium,
		DifficultyMedium,
		DifficultyMediumHard,
		DifficultyHard,
	}
}

// MaxDifficultyIndex is the index of the last level on the ladder.
const MaxDifficultyIndex = 4

// DifficultyIndex returns the position of d on the progression ladder,
// or -1 for DifficultyRandomTables and unknown values.
func DifficultyIndex(d Difficulty) int {
	for i, v := range DifficultyOrder() {
		if v == d {
			return i
		}
	}
	return -1
}

// DifficultyDisplayName returns the label shown to the player.
func DifficultyDisplayName(d Difficulty) string {
	switch d {
	case DifficultyEasy:
		return "Nivel 1"
	case DifficultyEasyMedium:
		return "Nivel 2"
	case DifficultyMedium:
		return "Nivel 3"
	case DifficultyMediumHard:
		return "Nivel 4"
	case DifficultyHard:
		return "Nivel 5"
	case DifficultyRandomTables:
		return "Aleatorio"
	default:
		return string(d)
	}
}
