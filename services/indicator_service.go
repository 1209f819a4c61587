package services

import (
	"errors"
	"strconv"
	"strings"

	"stock_insights_backend/services/indicators"
	"stock_insights_backend/services/series"
	"stock_insights_backend/store"
)

// ErrNoPriceData signals that a symbol is unknown or has no stored history.
// Handlers translate it to a 404, not a server failure.
var ErrNoPriceData = errors.New("no price data found for symbol")

// IndicatorRequest selects which indicator families to compute
type IndicatorRequest struct {
	RSI  bool
	MACD bool
	SMA  []int
	EMA  []int
}

// SeriesValues carries one indicator's values aligned to the bundle's
// date axis; warm-up points are null in JSON.
type SeriesValues struct {
	Y []*float64 `json:"y"`
}

// MACDPayload carries the three MACD component series
type MACDPayload struct {
	MACDLine   SeriesValues `json:"macd_line"`
	SignalLine SeriesValues `json:"signal_line"`
	Histogram  SeriesValues `json:"histogram"`
}

// IndicatorBundle is the computed response payload. X is the shared date
// axis; every contained series has exactly len(X) points.
type IndicatorBundle struct {
	X    []string                `json:"x"`
	RSI  *SeriesValues           `json:"rsi,omitempty"`
	MACD *MACDPayload            `json:"macd,omitempty"`
	SMA  map[string]SeriesValues `json:"sma,omitempty"`
	EMA  map[string]SeriesValues `json:"ema,omitempty"`
}

// IndicatorService computes requested indicators over a symbol's stored
// price series.
type IndicatorService struct {
	loader *series.Loader
}

// NewIndicatorService creates an indicator service reading from the given store
func NewIndicatorService(st store.PriceStore) *IndicatorService {
	return &IndicatorService{loader: series.NewLoader(st)}
}

// Compute loads the close-price series for symbol and evaluates every
// requested indicator family. Returns ErrNoPriceData when the symbol has
// no stored history.
func (s *IndicatorService) Compute(symbol string, req IndicatorRequest) (*IndicatorBundle, error) {
	ser, err := s.loader.Load(strings.ToUpper(strings.TrimSpace(symbol)))
	if err != nil {
		return nil, err
	}
	if ser.Empty() {
		return nil, ErrNoPriceData
	}

	bundle := &IndicatorBundle{X: ser.Labels()}

	if req.RSI {
		bundle.RSI = &SeriesValues{Y: indicators.RSI(ser.Close, indicators.DefaultRSIWindow)}
	}

	if req.MACD {
		line, signal, hist := indicators.MACD(ser.Close,
			indicators.DefaultMACDShort, indicators.DefaultMACDLong, indicators.DefaultMACDSignal)
		bundle.MACD = &MACDPayload{
			MACDLine:   SeriesValues{Y: line},
			SignalLine: SeriesValues{Y: signal},
			Histogram:  SeriesValues{Y: hist},
		}
	}

	if len(req.SMA) > 0 {
		bundle.SMA = make(map[string]SeriesValues, len(req.SMA))
		for _, window := range req.SMA {
			bundle.SMA[strconv.Itoa(window)] = SeriesValues{Y: indicators.SMA(ser.Close, window)}
		}
	}

	if len(req.EMA) > 0 {
		bundle.EMA = make(map[string]SeriesValues, len(req.EMA))
		for _, window := range req.EMA {
			bundle.EMA[strconv.Itoa(window)] = SeriesValues{Y: indicators.EMA(ser.Close, window)}
		}
	}

	return bundle, nil
}
