package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
)

// Currencies fetches every currency the provider knows about.
// The response is a flat object of code → display name; callers that only
// care about validity use the keys.
func (c *Client) Currencies(ctx context.Context) (map[string]string, error) {
	body, err := c.doGET(ctx, "/currencies")
	if err != nil {
		return nil, fmt.Errorf("failed to get currencies: %w", err)
	}

	var currencies map[string]string
	if err := json.Unmarshal(body, &currencies); err != nil {
		return nil, fmt.Errorf("failed to unmarshal currencies response: %w", err)
	}

	return currencies, nil
}
