package questions

import (
	"fmt"
	"math/rand"
	"time"
)

// mixedRetryLimit bounds the regeneration loop for mixed_add_sub questions.
// If every retry produces a negative result, the last question is returned
// as-is rather than looping forever.
const mixedRetryLimit = 100

// Generator produces arithmetic questions from an injected random source,
// so tests can seed it for deterministic runs.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator backed by rng.
// A nil rng gets a time-seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate produces the question for the given attempt index, category and
// difficulty. It never fails: an unrecognized category/difficulty combination
// yields the trivial fallback question instead, since a missing branch must
// not kill an in-progress game.
func (g *Generator) Generate(attempt int, cat Category, diff Difficulty) Question {
	switch cat {
	case CategoryChallenge:
		subCat, subDiff := g.resolveChallenge(attempt)
		return g.Generate(attempt, subCat, subDiff)
	case CategoryAddition:
		if q, ok := g.addition(diff); ok {
			return q
		}
	case CategorySubtraction:
		if q, ok := g.subtraction(diff); ok {
			return q
		}
	case CategoryMultiplication:
		if q, ok := g.multiplication(diff); ok {
			return q
		}
	case CategoryDivision:
		if q, ok := g.division(diff); ok {
			return q
		}
	case CategoryMixedAddSub:
		return g.mixedAddSub(diff)
	case CategoryMixedMultAdd:
		return g.mixedMultAdd(diff)
	case CategoryAllMixed:
		return g.allMixed(diff)
	}

	return Question{Text: "1 + 1", Answer: 2}
}

// intn returns a uniform integer in [min, max]. A degenerate range collapses
// to min so a bad bound can never panic mid-game.
func (g *Generator) intn(min, max int) int {
	if max <= min {
		return min
	}
	return g.rng.Intn(max-min+1) + min
}

// op returns "+" or "-" with equal probability.
func (g *Generator) op() string {
	if g.rng.Float64() < 0.5 {
		return "+"
	}
	return "-"
}

func (g *Generator) addition(diff Difficulty) (Question, bool) {
	switch diff {
	case DifficultyEasy: // 1 digit + 1 digit
		a, b := g.intn(1, 9), g.intn(1, 9)
		return Question{Text: fmt.Sprintf("%d + %d", a, b), Answer: a + b}, true
	case DifficultyEasyMedium: // 2 digits + 1 digit
		a, b := g.intn(10, 20), g.intn(1, 9)
		return Question{Text: fmt.Sprintf("%d + %d", a, b), Answer: a + b}, true
	case DifficultyMedium: // 2 digits + 2 digits
		a, b := g.intn(10, 50), g.intn(10, 50)
		return Question{Text: fmt.Sprintf("%d + %d", a, b), Answer: a + b}, true
	case DifficultyMediumHard: // three 1-digit operands
		a, b, c := g.intn(1, 9), g.intn(1, 9), g.intn(1, 9)
		return Question{Text: fmt.Sprintf("%d + %d + %d", a, b, c), Answer: a + b + c}, true
	case DifficultyHard: // two 2-digit operands plus a 1-digit one
		a, b, c := g.intn(10, 50), g.intn(10, 50), g.intn(1, 9)
		return Question{Text: fmt.Sprintf("%d + %d + %d", a, b, c), Answer: a + b + c}, true
	}
	return Question{}, false
}

// subtraction samples the minuend first and bounds the subtrahend below it,
// so the answer is never negative.
func (g *Generator) subtraction(diff Difficulty) (Question, bool) {
	var a, b int
	switch diff {
	case DifficultyEasy: // up to 10
		a = g.intn(2, 10)
		b = g.intn(1, a-1)
	case DifficultyEasyMedium: // up to 20
		a = g.intn(10, 20)
		b = g.intn(1, 9)
	case DifficultyMedium: // 2 digits - 1 digit
		a = g.intn(20, 50)
		b = g.intn(2, 9)
	case DifficultyMediumHard: // 2 digits - 2 digits, simple
		a = g.intn(30, 99)
		b = g.intn(10, min(25, a-1))
	case DifficultyHard: // 2 digits - 2 digits, complex
		a = g.intn(50, 99)
		b = g.intn(20, a-10)
	default:
		return Question{}, false
	}
	return Question{Text: fmt.Sprintf("%d - %d", a, b), Answer: a - b}, true
}

func (g *Generator) multiplication(diff Difficulty) (Question, bool) {
	var a, b int
	switch diff {
	case DifficultyEasy: // tables 1, 2 and 10
		switch {
		case g.rng.Float64() < 0.33:
			a = 1
		case g.rng.Float64() < 0.5:
			a = 2
		default:
			a = 10
		}
		b = g.intn(1, 10)
	case DifficultyEasyMedium: // tables 2-5
		a = g.intn(2, 5)
		b = g.intn(1, 10)
	case DifficultyMedium: // tables 2-9
		a = g.intn(2, 9)
		b = g.intn(2, 10)
	case DifficultyMediumHard: // tables 6-12
		a = g.intn(6, 12)
		b = g.intn(3, 10)
	case DifficultyHard: // 2 digit × 1 digit
		a = g.intn(12, 20)
		b = g.intn(3, 9)
	case DifficultyRandomTables: // full random 1-12
		a = g.intn(1, 12)
		b = g.intn(1, 12)
	default:
		return Question{}, false
	}
	return Question{Text: fmt.Sprintf("%d × %d", a, b), Answer: a * b}, true
}

// division samples divisor and quotient first and multiplies to get the
// dividend, so every division question has an exact integer result.
func (g *Generator) division(diff Difficulty) (Question, bool) {
	var divisor, quotient int
	switch diff {
	case DifficultyEasy:
		divisor, quotient = g.intn(2, 3), g.intn(2, 5)
	case DifficultyEasyMedium:
		divisor, quotient = g.intn(2, 5), g.intn(2, 10)
	case DifficultyMedium:
		divisor, quotient = g.intn(3, 9), g.intn(3, 9)
	case DifficultyMediumHard:
		divisor, quotient = g.intn(4, 12), g.intn(4, 12)
	case DifficultyHard:
		divisor, quotient = g.intn(5, 15), g.intn(5, 20)
	default:
		return Question{}, false
	}
	dividend := divisor * quotient
	return Question{Text: fmt.Sprintf("%d ÷ %d", dividend, divisor), Answer: quotient}, true
}

// mixedAddSub synthesizes "a OP1 b OP2 c" and retries until the final result
// is non-negative. At easy difficulty the intermediate result must also be
// non-negative. If the retry budget runs out the last question is returned
// even with a negative answer — an accepted imprecision, not a hang.
func (g *Generator) mixedAddSub(diff Difficulty) Question {
	maxVal := 10
	switch diff {
	case DifficultyEasy:
		maxVal = 5
	case DifficultyEasyMedium:
		maxVal = 10
	case DifficultyMedium:
		maxVal = 20
	case DifficultyMediumHard:
		maxVal = 50
	default:
		maxVal = 100
	}

	text := ""
	ans := -1
	for tries := 0; ans < 0 && tries < mixedRetryLimit; tries++ {
		op1, op2 := g.op(), g.op()

		a := g.intn(2, maxVal)
		bMax := maxVal
		if diff == DifficultyEasy {
			bMax = a
		}
		b := g.intn(1, bMax)
		c := g.intn(1, maxVal)

		intermediate := a + b
		if op1 == "-" {
			intermediate = a - b
		}
		if op2 == "+" {
			ans = intermediate + c
		} else {
			ans = intermediate - c
		}

		text = fmt.Sprintf("%d %s %d %s %d", a, op1, b, op2, c)

		if diff == DifficultyEasy && intermediate < 0 {
			ans = -1
		}
	}
	return Question{Text: text, Answer: ans}
}

// mixedMultAdd synthesizes "a × b OP c". For subtraction c is clamped below
// a×b to keep the result non-negative.
func (g *Generator) mixedMultAdd(diff Difficulty) Question {
	var a, b, c int
	switch diff {
	case DifficultyEasy, DifficultyEasyMedium:
		a, b, c = g.intn(1, 5), g.intn(1, 5), g.intn(1, 10)
	case DifficultyMedium:
		a, b, c = g.intn(2, 9), g.intn(2, 9), g.intn(1, 20)
	default:
		a, b, c = g.intn(3, 12), g.intn(2, 10), g.intn(1, 50)
	}

	if g.op() == "+" {
		return Question{Text: fmt.Sprintf("%d × %d + %d", a, b, c), Answer: a*b + c}
	}
	if c > a*b {
		c = g.intn(1, a*b-1)
	}
	return Question{Text: fmt.Sprintf("%d × %d - %d", a, b, c), Answer: a*b - c}
}

// allMixed is a 50/50 split between a division-of-a-product puzzle
// "a × b ÷ c" and a precedence puzzle "a ± b × c".
func (g *Generator) allMixed(diff Difficulty) Question {
	if g.rng.Float64() < 0.5 {
		cMax, resMax := 5, 5
		if diff == DifficultyHard {
			cMax, resMax = 9, 12
		}
		c := g.intn(2, cMax)
		res := g.intn(2, resMax)
		product := c * res

		// Factor the product via trial division from its square root down,
		// so the displayed a × b pair stays balanced.
		a, b := 1, product
		for i := isqrt(product); i >= 1; i-- {
			if product%i == 0 {
				a, b = i, product/i
				break
			}
		}
		return Question{Text: fmt.Sprintf("%d × %d ÷ %d", a, b, c), Answer: res}
	}

	c := g.intn(2, 5)
	b := g.intn(2, 5)
	a := g.intn(1, 20)
	if g.op() == "+" {
		return Question{Text: fmt.Sprintf("%d + %d × %d", a, b, c), Answer: a + b*c}
	}
	// Inflate a if needed so the subtraction stays non-negative.
	if a < b*c {
		a = b*c + g.intn(1, 10)
	}
	return Question{Text: fmt.Sprintf("%d - %d × %d", a, b, c), Answer: a - b*c}
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	i := 1
	for (i+1)*(i+1) <= n {
		i++
	}
	return i
}
