package indicators

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestSMAWindowBehavior(t *testing.T) {
	closes := []float64{10, 20, 30, 40}
	got := SMA(closes, 3)

	if len(got) != len(closes) {
		t.Fatalf("result length = %d, want %d", len(got), len(closes))
	}
	if got[0] != nil || got[1] != nil {
		t.Error("expected nil values before the window is warmed up")
	}
	if got[2] == nil || !almostEqual(*got[2], 20) {
		t.Errorf("SMA[2] = %v, want 20", got[2])
	}
	if got[3] == nil || !almostEqual(*got[3], 30) {
		t.Errorf("SMA[3] = %v, want 30", got[3])
	}
}

func TestSMAInsufficientData(t *testing.T) {
	got := SMA([]float64{10, 20}, 5)
	if len(got) != 2 {
		t.Fatalf("result length = %d, want 2", len(got))
	}
	for i, v := range got {
		if v != nil {
			t.Errorf("SMA[%d] = %v, want nil", i, *v)
		}
	}
}

func TestSMAScenario(t *testing.T) {
	// Stored closes for five consecutive trading days
	closes := []float64{100, 102, 101, 105, 110}
	got := SMA(closes, 3)

	want := []float64{101, 102.666666, 105.333333}
	for i, w := range want {
		v := got[i+2]
		if v == nil {
			t.Fatalf("SMA[%d] = nil, want %.4f", i+2, w)
		}
		if math.Abs(*v-w) > 1e-4 {
			t.Errorf("SMA[%d] = %.6f, want %.4f", i+2, *v, w)
		}
	}
}

func TestEMASeededAtFirstValue(t *testing.T) {
	closes := []float64{42.5, 43, 41, 44}
	got := EMA(closes, 10)

	if got[0] == nil || *got[0] != 42.5 {
		t.Errorf("EMA[0] = %v, want exactly the first input value", got[0])
	}
	for i, v := range got {
		if v == nil {
			t.Errorf("EMA[%d] = nil, expected every point defined", i)
		}
	}
}

func TestEMARecurrence(t *testing.T) {
	closes := []float64{10, 20, 30}
	got := EMA(closes, 3) // alpha = 0.5

	if !almostEqual(*got[1], 15) {
		t.Errorf("EMA[1] = %v, want 15", *got[1])
	}
	if !almostEqual(*got[2], 22.5) {
		t.Errorf("EMA[2] = %v, want 22.5", *got[2])
	}
}

func TestRSIAllGains(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	got := RSI(closes, 14)

	for i := 0; i < 14; i++ {
		if got[i] != nil {
			t.Errorf("RSI[%d] = %v, want nil during warm-up", i, *got[i])
		}
	}
	for i := 14; i < len(got); i++ {
		if got[i] == nil || *got[i] != 100 {
			t.Errorf("RSI[%d] = %v, want 100 for strictly increasing closes", i, got[i])
		}
	}
}

func TestRSIAllLosses(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 200 - float64(i)
	}
	got := RSI(closes, 14)

	for i := 14; i < len(got); i++ {
		if got[i] == nil || *got[i] != 0 {
			t.Errorf("RSI[%d] = %v, want 0 for strictly decreasing closes", i, got[i])
		}
	}
}

func TestRSIBounded(t *testing.T) {
	closes := []float64{44, 44.34, 44.09, 44.15, 43.61, 44.33, 44.83, 45.10,
		45.42, 45.84, 46.08, 45.89, 46.03, 45.61, 46.28, 46.28, 46.0, 46.03,
		46.41, 46.22, 45.64}
	got := RSI(closes, 14)

	for i, v := range got {
		if v == nil {
			continue
		}
		if *v < 0 || *v > 100 {
			t.Errorf("RSI[%d] = %v, outside [0,100]", i, *v)
		}
	}
	if got[len(got)-1] == nil {
		t.Error("expected RSI defined after warm-up")
	}
}

func TestRSIInsufficientData(t *testing.T) {
	got := RSI([]float64{1, 2, 3}, 14)
	for i, v := range got {
		if v != nil {
			t.Errorf("RSI[%d] = %v, want nil when series is shorter than window", i, *v)
		}
	}
}

func TestMACDDecomposition(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + 10*math.Sin(float64(i)/5)
	}

	line, signal, hist := MACD(closes, 12, 26, 9)

	if len(line) != len(closes) || len(signal) != len(closes) || len(hist) != len(closes) {
		t.Fatal("MACD series must be aligned to the input length")
	}

	for i := range closes {
		if line[i] == nil || signal[i] == nil || hist[i] == nil {
			t.Fatalf("MACD components undefined at %d", i)
		}
		if !almostEqual(*hist[i], *line[i]-*signal[i]) {
			t.Errorf("histogram[%d] = %v, want macd-signal = %v", i, *hist[i], *line[i]-*signal[i])
		}
	}
}

func TestMACDEmptyInput(t *testing.T) {
	line, signal, hist := MACD(nil, 12, 26, 9)
	if len(line) != 0 || len(signal) != 0 || len(hist) != 0 {
		t.Error("expected empty output for empty input")
	}
}

func TestAlignmentAcrossIndicators(t *testing.T) {
	closes := []float64{5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20}

	if got := SMA(closes, 5); len(got) != len(closes) {
		t.Errorf("SMA length = %d, want %d", len(got), len(closes))
	}
	if got := EMA(closes, 5); len(got) != len(closes) {
		t.Errorf("EMA length = %d, want %d", len(got), len(closes))
	}
	if got := RSI(closes, 14); len(got) != len(closes) {
		t.Errorf("RSI length = %d, want %d", len(got), len(closes))
	}
}
