// Package ingest implements the fetch-merge-dedupe cycle that keeps
// stored price history current.
package ingest

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"stock_insights_backend/metrics"
	"stock_insights_backend/models"
	"stock_insights_backend/services/provider"
	"stock_insights_backend/store"

	"github.com/shopspring/decimal"
)

// DefaultLookbackDays is how far back the first fetch for a new symbol
// reaches when no prior history is stored (~1 year).
const DefaultLookbackDays = 365

// RefreshResult reports the outcome of one symbol's refresh
type RefreshResult struct {
	Fetched int `json:"fetched"`
	Skipped int `json:"skipped"`
}

// Engine merges freshly fetched bars into the price store without
// duplicating already-stored dates.
type Engine struct {
	store    store.PriceStore
	provider provider.BarProvider
	metrics  *metrics.Metrics
}

// NewEngine creates an ingestion engine. metrics may be nil.
func NewEngine(st store.PriceStore, prov provider.BarProvider, m *metrics.Metrics) *Engine {
	return &Engine{store: st, provider: prov, metrics: m}
}

// Refresh fetches missing bars for symbol and stores them. The fetch
// window starts one day after the latest stored date, or DefaultLookbackDays
// ago when no history exists. A provider returning zero bars is a no-op.
func (e *Engine) Refresh(ctx context.Context, symbol string) (RefreshResult, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if e.metrics != nil {
		e.metrics.RefreshRuns.Inc()
	}

	since := time.Now().UTC().AddDate(0, 0, -DefaultLookbackDays)
	latest, ok, err := e.store.LatestDate(symbol)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("latest date for %s: %w", symbol, err)
	}
	if ok {
		since = latest.AddDate(0, 0, 1)
	}

	fetchStart := time.Now()
	bars, err := e.provider.FetchBars(ctx, symbol, since)
	if e.metrics != nil {
		e.metrics.FetchDuration.Observe(time.Since(fetchStart).Seconds())
	}
	if err != nil {
		if e.metrics != nil {
			e.metrics.RefreshFailures.Inc()
		}
		return RefreshResult{}, fmt.Errorf("fetch bars for %s: %w", symbol, err)
	}

	if len(bars) == 0 {
		// Market closed, symbol delisted, or already up to date.
		return RefreshResult{}, nil
	}

	stock, err := e.store.EnsureStock(symbol)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("ensure stock %s: %w", symbol, err)
	}

	rows := make([]models.PriceHistory, len(bars))
	for i, bar := range bars {
		rows[i] = models.PriceHistory{
			StockID: stock.ID,
			Symbol:  symbol,
			Date:    bar.Date,
			Open:    decimal.NewFromFloat(bar.Open),
			High:    decimal.NewFromFloat(bar.High),
			Low:     decimal.NewFromFloat(bar.Low),
			Close:   decimal.NewFromFloat(bar.Close),
			Volume:  bar.Volume,
		}
	}

	inserted, err := e.store.UpsertBars(symbol, rows)
	if err != nil {
		return RefreshResult{}, fmt.Errorf("store bars for %s: %w", symbol, err)
	}

	if e.metrics != nil {
		e.metrics.BarsInserted.Add(float64(inserted))
	}

	return RefreshResult{Fetched: inserted, Skipped: len(bars) - inserted}, nil
}

// RefreshAll refreshes every tracked symbol independently. One symbol's
// failure is logged and does not stop the rest of the batch.
func (e *Engine) RefreshAll(ctx context.Context) {
	stocks, err := e.store.AllStocks()
	if err != nil {
		log.Printf("Error loading stocks for refresh: %v", err)
		return
	}

	refreshed := 0
	for _, stock := range stocks {
		res, err := e.Refresh(ctx, stock.Symbol)
		if err != nil {
			log.Printf("Error refreshing %s: %v", stock.Symbol, err)
			continue
		}
		if res.Fetched > 0 {
			log.Printf("Refreshed %s: %d new bars (%d skipped)", stock.Symbol, res.Fetched, res.Skipped)
		}
		refreshed++
	}

	log.Printf("Batch refresh completed for %d/%d symbols", refreshed, len(stocks))
}
