package questions

// Challenge-mode curriculum: the 50 attempts of a session map onto five
// progressive bands of 10 questions each. Each band fixes a sub-difficulty
// and draws the sub-category from an expanding weighted set, so the run
// front-loads easy single operations and backloads compound expert ones.

// resolveChallenge maps an attempt index to the concrete sub-category and
// sub-difficulty to generate for a challenge run.
func (g *Generator) resolveChallenge(attempt int) (Category, Difficulty) {
	switch {
	case attempt < 10:
		// Band 1 (Q 1-10): easy add/sub.
		if g.rng.Float64() < 0.5 {
			return CategoryAddition, DifficultyEasy
		}
		return CategorySubtraction, DifficultyEasy

	case attempt < 20:
		// Band 2 (Q 11-20): easy-medium, multiplication joins.
		r := g.rng.Float64()
		switch {
		case r < 0.33:
			return CategoryAddition, DifficultyEasyMedium
		case r < 0.66:
			return CategorySubtraction, DifficultyEasyMedium
		default:
			return CategoryMultiplication, DifficultyEasyMedium
		}

	case attempt < 30:
		// Band 3 (Q 21-30): medium, division joins.
		r := g.rng.Float64()
		switch {
		case r < 0.25:
			return CategoryAddition, DifficultyMedium
		case r < 0.5:
			return CategorySubtraction, DifficultyMedium
		case r < 0.75:
			return CategoryMultiplication, DifficultyMedium
		default:
			return CategoryDivision, DifficultyMedium
		}

	case attempt < 40:
		// Band 4 (Q 31-40): medium-hard, mixed operations join.
		r := g.rng.Float64()
		switch {
		case r < 0.2:
			return CategoryMultiplication, DifficultyMediumHard
		case r < 0.4:
			return CategoryDivision, DifficultyMediumHard
		case r < 0.7:
			return CategoryMixedAddSub, DifficultyMediumHard
		default:
			return CategoryMixedMultAdd, DifficultyMediumHard
		}

	default:
		// Band 5 (Q 41-50): hard, expert mixed plus hard division.
		r := g.rng.Float64()
		switch {
		case r < 0.3:
			return CategoryMixedMultAdd, DifficultyHard
		case r < 0.6:
			return CategoryAllMixed, DifficultyHard
		default:
			return CategoryDivision, DifficultyHard
		}
	}
}
