package mentions

import (
	"context"
	"math"
	"testing"

	"currency-bot/internal/features/currency"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticProvider struct {
	currencies map[string]string
}

func (p *staticProvider) Currencies(ctx context.Context) (map[string]string, error) {
	return p.currencies, nil
}

func loadedRegistry(t *testing.T) *currency.Registry {
	t.Helper()
	registry := currency.NewRegistry(&staticProvider{currencies: map[string]string{
		"USD": "United States Dollar",
		"EUR": "Euro",
		"MXN": "Mexican Peso",
	}})
	registry.EnsureLoaded(context.Background())
	require.True(t, registry.Loaded())
	return registry
}

func TestDetectCodeFollowedByNumber(t *testing.T) {
	registry := loadedRegistry(t)

	matches := Detect("it costs usd 25.50 over there", registry)

	require.Len(t, matches, 1)
	assert.Equal(t, "USD", matches[0].Currency)
	assert.Equal(t, 25.50, matches[0].Value)
}

func TestDetectMultipleAndOverlapping(t *testing.T) {
	registry := loadedRegistry(t)

	// "eur 5" matches, and "5 usd" does not consume "usd 10".
	matches := Detect("eur 5 usd 10", registry)

	require.Len(t, matches, 2)
	assert.Equal(t, Match{Currency: "EUR", Value: 5}, matches[0])
	assert.Equal(t, Match{Currency: "USD", Value: 10}, matches[1])
}

func TestDetectRejectsNonNumericNeighbor(t *testing.T) {
	registry := loadedRegistry(t)

	assert.Empty(t, Detect("usd bills are green", registry))
}

func TestDetectRejectsNonFiniteValues(t *testing.T) {
	registry := loadedRegistry(t)

	// ParseFloat accepts these without error, but only finite numbers
	// count as a registry-branch match.
	assert.Empty(t, Detect("usd Inf", registry))
	assert.Empty(t, Detect("usd +Inf", registry))
	assert.Empty(t, Detect("usd -Inf", registry))
	assert.Empty(t, Detect("usd NaN", registry))
}

func TestDetectUnsupportedCode(t *testing.T) {
	registry := loadedRegistry(t)

	assert.Empty(t, Detect("xyz 10", registry))
}

func TestDetectAliasKeepsRawToken(t *testing.T) {
	registry := loadedRegistry(t)

	matches := Detect("lend me bucks 20 please", registry)

	require.Len(t, matches, 1)
	// Alias matches carry the alias word itself, never the code behind it.
	assert.Equal(t, "BUCKS", matches[0].Currency)
	assert.Equal(t, 20.0, matches[0].Value)
}

func TestDetectAliasSkipsNumericCheck(t *testing.T) {
	registry := loadedRegistry(t)

	matches := Detect("bucks galore", registry)

	require.Len(t, matches, 1)
	assert.Equal(t, "BUCKS", matches[0].Currency)
	assert.True(t, math.IsNaN(matches[0].Value))
}

func TestDetectTrailingTokenNeverMatches(t *testing.T) {
	registry := loadedRegistry(t)

	// Last token has no neighbor, alias or not.
	assert.Empty(t, Detect("send me some bucks", registry))
	assert.Empty(t, Detect("usd", registry))
}

func TestDetectEmptyRegistryStillMatchesAliases(t *testing.T) {
	registry := currency.NewRegistry(&staticProvider{currencies: nil})

	matches := Detect("usd 10 pesos 3", registry)

	require.Len(t, matches, 1)
	assert.Equal(t, "PESOS", matches[0].Currency)
}
