package store

import (
	"errors"
	"log"
	"strings"
	"time"

	"stock_insights_backend/models"

	"gorm.io/gorm"
)

// PriceStore is the persistence boundary for symbols and their daily bars.
// Indicator and ingestion code depends on this interface, not on gorm.
type PriceStore interface {
	// UpsertBars inserts the bars that are not yet stored for symbol and
	// returns how many rows were actually inserted. Bars whose (symbol, date)
	// already exists are skipped. A raced duplicate insert rolls the whole
	// batch back and reports zero inserted without returning an error; the
	// caller may retry.
	UpsertBars(symbol string, bars []models.PriceHistory) (int, error)

	// LatestDate returns the most recent stored trading date for symbol.
	// ok is false when no bars are stored.
	LatestDate(symbol string) (date time.Time, ok bool, err error)

	// AllBars returns every stored bar for symbol, ascending by date.
	// An unknown symbol yields an empty slice, not an error.
	AllBars(symbol string) ([]models.PriceHistory, error)

	// EnsureStock returns the Stock row for symbol, creating it on first
	// sight with Name defaulting to the ticker.
	EnsureStock(symbol string) (models.Stock, error)

	// AllStocks returns every tracked symbol.
	AllStocks() ([]models.Stock, error)
}

// GormPriceStore implements PriceStore on a relational database via gorm.
type GormPriceStore struct {
	db *gorm.DB
}

// NewGormPriceStore creates a gorm-backed price store
func NewGormPriceStore(db *gorm.DB) *GormPriceStore {
	return &GormPriceStore{db: db}
}

func (s *GormPriceStore) UpsertBars(symbol string, bars []models.PriceHistory) (int, error) {
	if len(bars) == 0 {
		return 0, nil
	}

	// Preload the existing-date set once so the per-bar check is O(1).
	var existing []models.PriceHistory
	if err := s.db.Select("date").Where("symbol = ?", symbol).Find(&existing).Error; err != nil {
		return 0, err
	}
	seen := make(map[string]struct{}, len(existing))
	for _, row := range existing {
		seen[dayKey(row.Date)] = struct{}{}
	}

	fresh := make([]models.PriceHistory, 0, len(bars))
	for _, bar := range bars {
		if _, dup := seen[dayKey(bar.Date)]; dup {
			continue
		}
		seen[dayKey(bar.Date)] = struct{}{}
		fresh = append(fresh, bar)
	}

	if len(fresh) == 0 {
		return 0, nil
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&fresh).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			// A concurrent refresh won the race for at least one date. The
			// batch is rolled back as a whole; the next run picks it up.
			log.Printf("Duplicate bar insert for %s, batch discarded", symbol)
			return 0, nil
		}
		return 0, err
	}

	return len(fresh), nil
}

func (s *GormPriceStore) LatestDate(symbol string) (time.Time, bool, error) {
	var bar models.PriceHistory
	err := s.db.Where("symbol = ?", symbol).Order("date DESC").First(&bar).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}
	return bar.Date, true, nil
}

func (s *GormPriceStore) AllBars(symbol string) ([]models.PriceHistory, error) {
	var bars []models.PriceHistory
	err := s.db.Where("symbol = ?", symbol).Order("date ASC").Find(&bars).Error
	if err != nil {
		return nil, err
	}
	return bars, nil
}

func (s *GormPriceStore) EnsureStock(symbol string) (models.Stock, error) {
	var stock models.Stock
	err := s.db.Where("symbol = ?", symbol).First(&stock).Error
	if err == nil {
		return stock, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Stock{}, err
	}

	stock = models.Stock{Symbol: symbol, Name: symbol}
	if err := s.db.Create(&stock).Error; err != nil {
		if isDuplicateKey(err) {
			// Created concurrently, re-read the winner.
			if err := s.db.Where("symbol = ?", symbol).First(&stock).Error; err != nil {
				return models.Stock{}, err
			}
			return stock, nil
		}
		return models.Stock{}, err
	}
	return stock, nil
}

func (s *GormPriceStore) AllStocks() ([]models.Stock, error) {
	var stocks []models.Stock
	if err := s.db.Order("symbol ASC").Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// dayKey normalizes a bar date to its calendar day
func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// isDuplicateKey reports whether err is a unique-constraint violation.
// gorm translates postgres errors; the string checks cover sqlite in tests.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
