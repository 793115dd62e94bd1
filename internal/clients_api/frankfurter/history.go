package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// HistoryResponse is the provider's answer for a date-range series.
// Rates maps an ISO date to the per-target values for that day, e.g.
// "2024-03-01" → {"USD": 1.0834}.
type HistoryResponse struct {
	Base      string                        `json:"base"`
	StartDate string                        `json:"start_date"`
	EndDate   string                        `json:"end_date"`
	Rates     map[string]map[string]float64 `json:"rates"`
}

// History fetches the currency→USD series for the window selected by
// rangeCode, ending today.
func (c *Client) History(ctx context.Context, currency, rangeCode string) (*HistoryResponse, error) {
	now := time.Now().UTC()
	start := historyStart(rangeCode, now)

	params := url.Values{}
	params.Set("from", currency)
	params.Set("to", "USD")

	endpoint := fmt.Sprintf("/%s..%s?%s",
		start.Format("2006-01-02"), now.Format("2006-01-02"), params.Encode())

	body, err := c.doGET(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch historical rates: %w", err)
	}

	var history HistoryResponse
	if err := json.Unmarshal(body, &history); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history response: %w", err)
	}

	return &history, nil
}

// historyStart computes the window start for a range code. Unrecognized
// codes fall back to one month; that is deliberate, not an error.
func historyStart(rangeCode string, end time.Time) time.Time {
	switch rangeCode {
	case "d":
		return end.AddDate(0, 0, -1)
	case "w":
		return end.AddDate(0, 0, -7)
	case "m":
		return end.AddDate(0, -1, 0)
	case "y":
		return end.AddDate(-1, 0, 0)
	case "at":
		return end.AddDate(-5, 0, 0)
	default:
		return end.AddDate(0, -1, 0)
	}
}
