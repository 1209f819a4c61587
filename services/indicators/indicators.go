// Package indicators implements the technical indicator calculations as
// pure functions over a date-ascending close-price series. Every function
// returns a slice aligned 1:1 with its input; points where the indicator
// is not yet warmed up are nil.
package indicators

// SMA returns the trailing simple moving average over window closes.
// The first window-1 points are nil.
func SMA(closes []float64, window int) []*float64 {
	out := make([]*float64, len(closes))
	if window <= 0 || len(closes) < window {
		return out
	}

	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= window {
			sum -= closes[i-window]
		}
		if i >= window-1 {
			v := sum / float64(window)
			out[i] = &v
		}
	}
	return out
}

// EMA returns the exponential moving average with smoothing factor
// alpha = 2/(window+1), seeded at the first input value. Every point is
// defined.
func EMA(closes []float64, window int) []*float64 {
	out := make([]*float64, len(closes))
	for i, v := range emaValues(closes, window) {
		v := v
		out[i] = &v
	}
	return out
}

// emaValues is the raw EMA recurrence used by EMA and MACD
func emaValues(closes []float64, window int) []float64 {
	if len(closes) == 0 || window <= 0 {
		return nil
	}
	alpha := 2.0 / float64(window+1)
	out := make([]float64, len(closes))
	out[0] = closes[0]
	for i := 1; i < len(closes); i++ {
		out[i] = alpha*closes[i] + (1-alpha)*out[i-1]
	}
	return out
}

// RSI returns the relative strength index over a trailing rolling mean of
// day-over-day gains and losses. The first window points are nil. When the
// average loss is zero the oscillator saturates at 100 instead of dividing
// by zero.
func RSI(closes []float64, window int) []*float64 {
	out := make([]*float64, len(closes))
	if window <= 0 || len(closes) <= window {
		return out
	}

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	var gainSum, lossSum float64
	for i := 1; i < len(closes); i++ {
		gainSum += gains[i]
		lossSum += losses[i]
		if i > window {
			gainSum -= gains[i-window]
			lossSum -= losses[i-window]
		}
		if i < window {
			continue
		}

		avgGain := gainSum / float64(window)
		avgLoss := lossSum / float64(window)

		var v float64
		if avgLoss == 0 {
			v = 100
		} else {
			rs := avgGain / avgLoss
			v = 100 - 100/(1+rs)
		}
		out[i] = &v
	}
	return out
}

// DefaultRSIWindow is the conventional RSI lookback
const DefaultRSIWindow = 14

// MACD returns the moving average convergence divergence decomposition:
// macd line (short EMA minus long EMA), signal line (EMA of the macd line)
// and histogram (macd minus signal), all aligned to the input dates.
func MACD(closes []float64, short, long, signal int) (line, signalLine, histogram []*float64) {
	line = make([]*float64, len(closes))
	signalLine = make([]*float64, len(closes))
	histogram = make([]*float64, len(closes))
	if len(closes) == 0 {
		return line, signalLine, histogram
	}

	shortEMA := emaValues(closes, short)
	longEMA := emaValues(closes, long)

	macd := make([]float64, len(closes))
	for i := range closes {
		macd[i] = shortEMA[i] - longEMA[i]
	}
	sig := emaValues(macd, signal)

	for i := range closes {
		l, s := macd[i], sig[i]
		h := l - s
		line[i] = &l
		signalLine[i] = &s
		histogram[i] = &h
	}
	return line, signalLine, histogram
}

// Standard MACD parameters
const (
	DefaultMACDShort  = 12
	DefaultMACDLong   = 26
	DefaultMACDSignal = 9
)
