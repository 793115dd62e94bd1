package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// LatestResponse is the provider's answer for a single conversion.
// rates carries the already-converted amount keyed by target code.
type LatestResponse struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

// Convert asks the provider for amount expressed in the target currency.
// Precondition: the caller has already validated from/to against the
// registry; the client forwards whatever it is given.
func (c *Client) Convert(ctx context.Context, from, to string, amount float64) (float64, error) {
	params := url.Values{}
	params.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	params.Set("from", from)
	params.Set("to", to)

	body, err := c.doGET(ctx, "/latest?"+params.Encode())
	if err != nil {
		return 0, fmt.Errorf("failed to fetch conversion rate: %w", err)
	}

	var latest LatestResponse
	if err := json.Unmarshal(body, &latest); err != nil {
		return 0, fmt.Errorf("failed to unmarshal latest response: %w", err)
	}

	rate, ok := latest.Rates[to]
	if !ok {
		return 0, fmt.Errorf("rate for %s missing in response", to)
	}

	return rate, nil
}
