// Package series reconstructs ordered close-price time series from the
// price store for indicator computation.
package series

import (
	"time"

	"stock_insights_backend/store"
)

// Series is a date-ascending view of one symbol's price history. Calendar
// gaps (weekends, holidays, missed fetches) are simply absent dates; the
// slices are parallel and index-aligned.
type Series struct {
	Dates  []time.Time
	Open   []float64
	High   []float64
	Low    []float64
	Close  []float64
	Volume []*int64
}

// Empty reports whether the series has no data points
func (s Series) Empty() bool {
	return len(s.Dates) == 0
}

// Labels returns the date axis formatted as YYYY-MM-DD strings
func (s Series) Labels() []string {
	labels := make([]string, len(s.Dates))
	for i, d := range s.Dates {
		labels[i] = d.Format("2006-01-02")
	}
	return labels
}

// Loader builds Series values from stored price history
type Loader struct {
	store store.PriceStore
}

// NewLoader creates a series loader on top of the given store
func NewLoader(st store.PriceStore) *Loader {
	return &Loader{store: st}
}

// Load returns the full ordered series for symbol. An unknown symbol or
// one without stored bars yields an empty Series, not an error.
func (l *Loader) Load(symbol string) (Series, error) {
	bars, err := l.store.AllBars(symbol)
	if err != nil {
		return Series{}, err
	}

	s := Series{
		Dates:  make([]time.Time, len(bars)),
		Open:   make([]float64, len(bars)),
		High:   make([]float64, len(bars)),
		Low:    make([]float64, len(bars)),
		Close:  make([]float64, len(bars)),
		Volume: make([]*int64, len(bars)),
	}
	for i, bar := range bars {
		s.Dates[i] = bar.Date
		s.Open[i] = bar.Open.InexactFloat64()
		s.High[i] = bar.High.InexactFloat64()
		s.Low[i] = bar.Low.InexactFloat64()
		s.Close[i] = bar.Close.InexactFloat64()
		s.Volume[i] = bar.Volume
	}
	return s, nil
}
