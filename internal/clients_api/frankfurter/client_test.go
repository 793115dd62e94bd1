package frankfurter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/currencies", r.URL.Path)
		w.Write([]byte(`{"USD":"United States Dollar","EUR":"Euro"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	currencies, err := client.Currencies(context.Background())

	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"USD": "United States Dollar",
		"EUR": "Euro",
	}, currencies)
}

func TestConvert(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("amount"))
		assert.Equal(t, "USD", r.URL.Query().Get("from"))
		assert.Equal(t, "EUR", r.URL.Query().Get("to"))
		w.Write([]byte(`{"amount":10,"base":"USD","date":"2025-08-29","rates":{"EUR":9.21}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	result, err := client.Convert(context.Background(), "USD", "EUR", 10)

	require.NoError(t, err)
	assert.Equal(t, 9.21, result)
}

func TestConvertMissingRate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"amount":1,"base":"USD","date":"2025-08-29","rates":{}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Convert(context.Background(), "USD", "EUR", 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "EUR")
}

func TestConvertServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Convert(context.Background(), "USD", "XXX", 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (404)")
}

func TestHistory(t *testing.T) {
	var gotPath, gotFrom, gotTo string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotFrom = r.URL.Query().Get("from")
		gotTo = r.URL.Query().Get("to")
		w.Write([]byte(`{"base":"EUR","start_date":"2025-07-29","end_date":"2025-08-29",` +
			`"rates":{"2025-07-29":{"USD":1.08},"2025-08-29":{"USD":1.10}}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	history, err := client.History(context.Background(), "EUR", "m")

	require.NoError(t, err)
	assert.Equal(t, "EUR", gotFrom)
	assert.Equal(t, "USD", gotTo)
	assert.Regexp(t, `^/\d{4}-\d{2}-\d{2}\.\.\d{4}-\d{2}-\d{2}$`, gotPath)
	require.Len(t, history.Rates, 2)
	assert.Equal(t, 1.10, history.Rates["2025-08-29"]["USD"])
}

func TestHistoryStartWindows(t *testing.T) {
	end := time.Date(2025, 8, 29, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, end.AddDate(0, 0, -1), historyStart("d", end))
	assert.Equal(t, end.AddDate(0, 0, -7), historyStart("w", end))
	assert.Equal(t, end.AddDate(0, -1, 0), historyStart("m", end))
	assert.Equal(t, end.AddDate(-1, 0, 0), historyStart("y", end))
	assert.Equal(t, end.AddDate(-5, 0, 0), historyStart("at", end))

	// Unrecognized codes are not an error; they mean one month.
	assert.Equal(t, historyStart("m", end), historyStart("x", end))
	assert.Equal(t, historyStart("m", end), historyStart("", end))
}

func TestNewClientDefaults(t *testing.T) {
	client := NewClient("", 0)

	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, 30*time.Second, client.httpClient.Timeout)
}
