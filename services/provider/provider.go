package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Bar is one trading day's OHLCV data as returned by the market-data API.
// Volume is nil when the provider omits it.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume *int64
}

// BarProvider fetches daily bars for a symbol from start through today.
// An empty result means "no new data" and is not an error. Callers must
// not assume any ordering of the returned bars.
type BarProvider interface {
	FetchBars(ctx context.Context, symbol string, start time.Time) ([]Bar, error)
}

// historyResponse mirrors the provider's JSON payload
type historyResponse struct {
	Data []struct {
		Date   string  `json:"date"`
		Open   float64 `json:"open"`
		High   float64 `json:"high"`
		Low    float64 `json:"low"`
		Close  float64 `json:"close"`
		Volume *int64  `json:"volume"`
	} `json:"data"`
}

// HTTPProvider fetches daily price history over the provider's REST API
type HTTPProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPProvider creates a provider client for the given API base URL
func NewHTTPProvider(baseURL string) *HTTPProvider {
	return &HTTPProvider{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (p *HTTPProvider) FetchBars(ctx context.Context, symbol string, start time.Time) ([]Bar, error) {
	endpoint := fmt.Sprintf("%s/v1/history?symbol=%s&start=%s&end=%s",
		p.baseURL,
		url.QueryEscape(symbol),
		start.Format("2006-01-02"),
		time.Now().UTC().Format("2006-01-02"),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "stock-insights-backend/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("provider error (status %d): %s", resp.StatusCode, string(body))
	}

	var payload historyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	bars := make([]Bar, 0, len(payload.Data))
	for _, row := range payload.Data {
		date, err := time.Parse("2006-01-02", row.Date)
		if err != nil {
			return nil, fmt.Errorf("bad date %q in provider response: %w", row.Date, err)
		}
		bars = append(bars, Bar{
			Date:   date,
			Open:   row.Open,
			High:   row.High,
			Low:    row.Low,
			Close:  row.Close,
			Volume: row.Volume,
		})
	}

	return bars, nil
}
