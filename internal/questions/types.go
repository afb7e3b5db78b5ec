package questions

// Question represents a generated arithmetic question ready for display.
// A Question is created fresh per attempt, never mutated, and discarded once
// the attempt has been judged.
type Question struct {
	// Text is the expression shown to the player, e.g. "24 ÷ 6" or "3 + 4 × 2".
	Text string

	// Answer is the exact integer result of evaluating Text.
	// For division questions the dividend is always constructed as
	// divisor × quotient, so the result is exact by construction.
	Answer int
}
