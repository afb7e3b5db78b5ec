package questions

// defaultTimeLimit is the fallback for an unmapped difficulty.
const defaultTimeLimit = 14

// TimeLimit returns the countdown, in seconds, for a question.
//
// Challenge mode always uses its own dynamic rule — 10 s, plus one second
// every 10 questions, capped at 15 s — and ignores custom timers, since a
// fixed per-difficulty override makes no sense across the challenge bands.
// Outside challenge mode a non-zero per-user custom timer for the exact
// difficulty wins over the default table.
func TimeLimit(attempt int, diff Difficulty, cat Category, custom map[Difficulty]int) int {
	if cat == CategoryChallenge {
		limit := 10 + attempt/10
		if limit > 15 {
			limit = 15
		}
		return limit
	}

	if secs, ok := custom[diff]; ok && secs > 0 {
		return secs
	}

	switch diff {
	case DifficultyEasy:
		return 10
	case DifficultyEasyMedium:
		return 12
	case DifficultyMedium:
		return 14
	case DifficultyMediumHard:
		return 16
	case DifficultyHard:
		return 18
	case DifficultyRandomTables:
		return 12
	default:
		return defaultTimeLimit
	}
}
