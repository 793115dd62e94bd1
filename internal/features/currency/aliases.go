package currency

import "strings"

// currencyAliases maps a canonical code to the colloquial words that
// should be treated as mentions of it. Fixed at startup.
var currencyAliases = map[string][]string{
	"USD": {"bucks"},
	"MXN": {"pesos"},
}

// aliasIndex is the inverted view: uppercased alias word → canonical code.
var aliasIndex = make(map[string]string)

func init() {
	for code, aliases := range currencyAliases {
		for _, alias := range aliases {
			aliasIndex[strings.ToUpper(alias)] = code
		}
	}
}

// IsAlias reports whether the uppercased token is a known alias word.
// Note that detection keeps the alias text itself; nothing resolves it
// back to the canonical code on the conversion path.
func IsAlias(token string) bool {
	_, ok := aliasIndex[token]
	return ok
}

// AliasCode returns the canonical code behind an uppercased alias word.
func AliasCode(token string) (string, bool) {
	code, ok := aliasIndex[token]
	return code, ok
}
