package questions

import (
	"math/rand"
	"strconv"
	"strings"
	"testing"
)

func testGen(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)))
}

// evalText re-evaluates a question's display text with standard precedence
// (× and ÷ before + and -, left associative). Used to verify that Answer
// always matches the arithmetic the player sees.
func evalText(t *testing.T, text string) int {
	t.Helper()
	fields := strings.Fields(text)
	if len(fields) == 0 || len(fields)%2 == 0 {
		t.Fatalf("malformed question text %q", text)
	}

	nums := make([]int, 0, 3)
	ops := make([]string, 0, 2)
	for i, f := range fields {
		if i%2 == 0 {
			n, err := strconv.Atoi(f)
			if err != nil {
				t.Fatalf("bad operand %q in %q: %v", f, text, err)
			}
			nums = append(nums, n)
		} else {
			ops = append(ops, f)
		}
	}

	// First pass: multiplication and division.
	for i := 0; i < len(ops); {
		switch ops[i] {
		case "×":
			nums[i] *= nums[i+1]
		case "÷":
			if nums[i+1] == 0 || nums[i]%nums[i+1] != 0 {
				t.Fatalf("inexact division in %q", text)
			}
			nums[i] /= nums[i+1]
		default:
			i++
			continue
		}
		nums = append(nums[:i+1], nums[i+2:]...)
		ops = append(ops[:i], ops[i+1:]...)
	}

	// Second pass: addition and subtraction.
	result := nums[0]
	for i, op := range ops {
		switch op {
		case "+":
			result += nums[i+1]
		case "-":
			result -= nums[i+1]
		default:
			t.Fatalf("unknown operator %q in %q", op, text)
		}
	}
	return result
}

func ladderAndTables() []Difficulty {
	return append(DifficultyOrder(), DifficultyRandomTables)
}

func TestGenerateTextMatchesAnswer(t *testing.T) {
	g := testGen(1)
	for _, cat := range AllCategories() {
		for _, diff := range ladderAndTables() {
			for attempt := 0; attempt < 50; attempt++ {
				q := g.Generate(attempt, cat, diff)
				if got := evalText(t, q.Text); got != q.Answer {
					t.Fatalf("%s/%s attempt %d: %q evaluates to %d, Answer = %d",
						cat, diff, attempt, q.Text, got, q.Answer)
				}
			}
		}
	}
}

func TestDivisionAlwaysExact(t *testing.T) {
	g := testGen(2)
	for _, diff := range DifficultyOrder() {
		for i := 0; i < 1000; i++ {
			q := g.Generate(i%50, CategoryDivision, diff)
			fields := strings.Fields(q.Text)
			if len(fields) != 3 || fields[1] != "÷" {
				t.Fatalf("unexpected division text %q", q.Text)
			}
			dividend, _ := strconv.Atoi(fields[0])
			divisor, _ := strconv.Atoi(fields[2])
			if divisor*q.Answer != dividend {
				t.Fatalf("%q: dividend %d != divisor %d × quotient %d",
					q.Text, dividend, divisor, q.Answer)
			}
		}
	}
}

func TestSubtractionNeverNegative(t *testing.T) {
	g := testGen(3)
	for _, diff := range DifficultyOrder() {
		for i := 0; i < 1000; i++ {
			q := g.Generate(i%50, CategorySubtraction, diff)
			if q.Answer < 0 {
				t.Fatalf("%s: negative answer %d for %q", diff, q.Answer, q.Text)
			}
		}
	}
}

func TestMixedAddSubNonNegative(t *testing.T) {
	g := testGen(4)
	for _, diff := range DifficultyOrder() {
		for i := 0; i < 1000; i++ {
			q := g.Generate(i%50, CategoryMixedAddSub, diff)
			if q.Answer < 0 {
				t.Fatalf("%s: negative answer %d for %q", diff, q.Answer, q.Text)
			}
		}
	}
}

func TestMixedMultAddNonNegative(t *testing.T) {
	g := testGen(5)
	for _, diff := range ladderAndTables() {
		for i := 0; i < 500; i++ {
			q := g.Generate(i%50, CategoryMixedMultAdd, diff)
			if q.Answer < 0 {
				t.Fatalf("%s: negative answer %d for %q", diff, q.Answer, q.Text)
			}
		}
	}
}

func TestGenerateUnknownComboFallsBack(t *testing.T) {
	g := testGen(6)
	tests := []struct {
		cat  Category
		diff Difficulty
	}{
		{Category("geometry"), DifficultyEasy},
		{CategoryAddition, Difficulty("impossible")},
		{CategoryDivision, DifficultyRandomTables},
	}
	for _, tt := range tests {
		q := g.Generate(0, tt.cat, tt.diff)
		if q.Text != "1 + 1" || q.Answer != 2 {
			t.Errorf("%s/%s: got %q = %d, want fallback 1 + 1 = 2",
				tt.cat, tt.diff, q.Text, q.Answer)
		}
	}
}

func TestChallengeBands(t *testing.T) {
	bands := []struct {
		name       string
		attempts   [2]int // inclusive range
		difficulty Difficulty
		categories map[Category]bool
	}{
		{"band1", [2]int{0, 9}, DifficultyEasy, map[Category]bool{
			CategoryAddition: true, CategorySubtraction: true,
		}},
		{"band2", [2]int{10, 19}, DifficultyEasyMedium, map[Category]bool{
			CategoryAddition: true, CategorySubtraction: true, CategoryMultiplication: true,
		}},
		{"band3", [2]int{20, 29}, DifficultyMedium, map[Category]bool{
			CategoryAddition: true, CategorySubtraction: true,
			CategoryMultiplication: true, CategoryDivision: true,
		}},
		{"band4", [2]int{30, 39}, DifficultyMediumHard, map[Category]bool{
			CategoryMultiplication: true, CategoryDivision: true,
			CategoryMixedAddSub: true, CategoryMixedMultAdd: true,
		}},
		{"band5", [2]int{40, 49}, DifficultyHard, map[Category]bool{
			CategoryMixedMultAdd: true, CategoryAllMixed: true, CategoryDivision: true,
		}},
	}

	g := testGen(7)
	for _, band := range bands {
		t.Run(band.name, func(t *testing.T) {
			for attempt := band.attempts[0]; attempt <= band.attempts[1]; attempt++ {
				for i := 0; i < 50; i++ {
					cat, diff := g.resolveChallenge(attempt)
					if diff != band.difficulty {
						t.Fatalf("attempt %d: difficulty %s, want %s", attempt, diff, band.difficulty)
					}
					if !band.categories[cat] {
						t.Fatalf("attempt %d: category %s not in band set", attempt, cat)
					}
				}
			}
		})
	}
}

func TestChallengeQuestionsWellFormed(t *testing.T) {
	g := testGen(8)
	for attempt := 0; attempt < 50; attempt++ {
		q := g.Generate(attempt, CategoryChallenge, DifficultyMedium)
		if got := evalText(t, q.Text); got != q.Answer {
			t.Fatalf("attempt %d: %q evaluates to %d, Answer = %d", attempt, q.Text, got, q.Answer)
		}
	}
}

func TestDifficultyIndex(t *testing.T) {
	tests := []struct {
		diff Difficulty
		want int
	}{
		{DifficultyEasy, 0},
		{DifficultyEasyMedium, 1},
		{DifficultyMedium, 2},
		{DifficultyMediumHard, 3},
		{DifficultyHard, 4},
		{DifficultyRandomTables, -1},
		{Difficulty("bogus"), -1},
	}
	for _, tt := range tests {
		if got := DifficultyIndex(tt.diff); got != tt.want {
			t.Errorf("DifficultyIndex(%s) = %d, want %d", tt.diff, got, tt.want)
		}
	}
}
