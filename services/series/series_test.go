package series

import (
	"testing"
	"time"

	"stock_insights_backend/models"
	"stock_insights_backend/store"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) store.PriceStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := models.MigrateStockModels(db); err != nil {
		t.Fatalf("migration failed: %v", err)
	}
	return store.NewGormPriceStore(db)
}

func TestLoadOrdersByDate(t *testing.T) {
	st := newTestStore(t)
	stock, err := st.EnsureStock("AAPL")
	if err != nil {
		t.Fatal(err)
	}

	// Inserted out of order; Load must come back date-ascending
	vol := int64(500)
	var bars []models.PriceHistory
	for _, row := range []struct {
		date  string
		close float64
	}{
		{"2024-01-05", 110},
		{"2024-01-02", 100},
		{"2024-01-03", 102},
	} {
		d, _ := time.Parse("2006-01-02", row.date)
		bars = append(bars, models.PriceHistory{
			StockID: stock.ID,
			Symbol:  "AAPL",
			Date:    d,
			Open:    decimal.NewFromFloat(row.close),
			High:    decimal.NewFromFloat(row.close),
			Low:     decimal.NewFromFloat(row.close),
			Close:   decimal.NewFromFloat(row.close),
			Volume:  &vol,
		})
	}
	if _, err := st.UpsertBars("AAPL", bars); err != nil {
		t.Fatal(err)
	}

	s, err := NewLoader(st).Load("AAPL")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	wantLabels := []string{"2024-01-02", "2024-01-03", "2024-01-05"}
	labels := s.Labels()
	if len(labels) != len(wantLabels) {
		t.Fatalf("labels = %v", labels)
	}
	for i, want := range wantLabels {
		if labels[i] != want {
			t.Errorf("labels[%d] = %s, want %s", i, labels[i], want)
		}
	}

	wantCloses := []float64{100, 102, 110}
	for i, want := range wantCloses {
		if s.Close[i] != want {
			t.Errorf("close[%d] = %v, want %v", i, s.Close[i], want)
		}
	}
	if s.Volume[0] == nil || *s.Volume[0] != 500 {
		t.Errorf("volume[0] = %v", s.Volume[0])
	}
}

func TestLoadUnknownSymbolIsEmpty(t *testing.T) {
	st := newTestStore(t)

	s, err := NewLoader(st).Load("NOPE")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !s.Empty() {
		t.Errorf("series should be empty, got %d points", len(s.Dates))
	}
}
