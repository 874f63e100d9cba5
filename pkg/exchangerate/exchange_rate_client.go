package exchangerate_client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

const defaultBaseUrl = "https://api.frankfurter.app"

// Fetcher is the subset of the client that CurrencyService depends on.
type Fetcher interface {
	FetchLatestRate(from, to string) (decimal.Decimal, error)
	FetchHistoricalRate(from, to string, date time.Time) (decimal.Decimal, error)
}

// Client fetches daily reference rates from the Frankfurter API. Rates are
// published once per business day; weekends and holidays return the most
// recent prior day, which callers treat as that day's rate.
type Client struct {
	BaseUrl    string
	HttpClient *http.Client
}

func New() *Client {
	return &Client{
		BaseUrl: defaultBaseUrl,
		HttpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type rateResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

func (c *Client) getRate(path, from, to string) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/%s?from=%s&to=%s", c.BaseUrl, path, from, to)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return decimal.Zero, err
	}
	response, err := c.HttpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rate request failed: %w", err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return decimal.Zero, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return decimal.Zero, fmt.Errorf("failed with status code %d: %s", response.StatusCode, string(responseBytes))
	}

	responseBody := rateResponse{}
	err = json.Unmarshal(responseBytes, &responseBody)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse rate response: %w", err)
	}

	rate, ok := responseBody.Rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("rate response missing %s: %s", to, string(responseBytes))
	}

	return decimal.NewFromFloat(rate), nil
}

// FetchLatestRate returns the most recently published rate for the pair.
func (c *Client) FetchLatestRate(from, to string) (decimal.Decimal, error) {
	return c.getRate("latest", from, to)
}

// FetchHistoricalRate returns the rate published on the given calendar day.
func (c *Client) FetchHistoricalRate(from, to string, date time.Time) (decimal.Decimal, error) {
	return c.getRate(date.Format(time.DateOnly), from, to)
}
