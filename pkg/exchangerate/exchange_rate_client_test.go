package exchangerate_client

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestFetchRates(t *testing.T) {
	var requestedPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestedPath = r.URL.Path + "?" + r.URL.RawQuery
		w.Write([]byte(`{"amount":1.0,"base":"USD","date":"2024-03-15","rates":{"EUR":0.9201}}`))
	}))
	defer server.Close()

	client := New()
	client.BaseUrl = server.URL

	t.Run("latest", func(t *testing.T) {
		rate, err := client.FetchLatestRate("USD", "EUR")
		require.NoError(t, err)
		require.True(t, rate.Equal(decimal.NewFromFloat(0.9201)), "got %s", rate)
		require.Equal(t, "/latest?from=USD&to=EUR", requestedPath)
	})

	t.Run("historical", func(t *testing.T) {
		date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		rate, err := client.FetchHistoricalRate("USD", "EUR", date)
		require.NoError(t, err)
		require.True(t, rate.Equal(decimal.NewFromFloat(0.9201)))
		require.Equal(t, "/2024-03-15?from=USD&to=EUR", requestedPath)
	})

	t.Run("missing pair in response", func(t *testing.T) {
		_, err := client.FetchLatestRate("USD", "GBP")
		require.Error(t, err)
	})
}

func TestFetchRateErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		w.Write([]byte(`not found`))
	}))
	defer server.Close()

	client := New()
	client.BaseUrl = server.URL

	_, err := client.FetchLatestRate("USD", "EUR")
	require.ErrorContains(t, err, "404")
}
