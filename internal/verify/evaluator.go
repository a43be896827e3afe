package verify

import "strings"

// separators tolerated on printed combos and result boards
var separatorReplacer = strings.NewReplacer("-", "", ".", "", " ", "")

// Normalize strips separator characters and folds case, keeping the
// significant characters in their original order. It is idempotent.
func Normalize(s string) string {
	return strings.ToUpper(separatorReplacer.Replace(s))
}

// IsWinner reports whether a bet combination matches a draw result:
// exact equality after normalization, nothing fuzzier. Digit order is
// significant, so "1-2-3" and "3-2-1" are different combinations.
func IsWinner(betCombo, drawResult string) bool {
	return Normalize(betCombo) == Normalize(drawResult)
}
