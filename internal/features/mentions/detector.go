package mentions

// Free-text currency mention detection: a greedy scan over adjacent token
// pairs, no windows consumed, so overlapping matches are allowed.

import (
	"math"
	"strconv"
	"strings"

	"currency-bot/internal/features/currency"
)

// Match is one detected (currency, amount) pair. Currency is the raw
// uppercased token from the message: for alias words that means the alias
// text itself ("BUCKS"), not the code behind it, and Value may be NaN
// because the alias branch does not validate the neighbor token.
type Match struct {
	Currency string
	Value    float64
}

// Detect scans text for `<currency-token> <numeric-token>` pairs. A pair
// matches when the first token is an alias word (no numeric check on the
// second), or a registry-supported code followed by a finite number.
func Detect(text string, registry *currency.Registry) []Match {
	var matches []Match

	words := strings.Fields(text)
	for i := 0; i < len(words)-1; i++ {
		token := strings.ToUpper(words[i])
		value, err := strconv.ParseFloat(words[i+1], 64)

		if currency.IsAlias(token) {
			if err != nil {
				value = math.NaN()
			}
			matches = append(matches, Match{Currency: token, Value: value})
		} else if registry.IsSupported(token) && err == nil && !math.IsInf(value, 0) && !math.IsNaN(value) {
			matches = append(matches, Match{Currency: token, Value: value})
		}
	}

	return matches
}
