package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Stock represents a tracked ticker symbol
type Stock struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Symbol    string    `gorm:"uniqueIndex;size:10;not null" json:"symbol"`
	Name      string    `gorm:"size:128" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PriceHistory represents one trading day's OHLCV bar for a symbol.
// The (symbol, date) unique index is what keeps ingestion idempotent:
// a raced duplicate insert fails the constraint instead of creating a
// second row for the same day.
type PriceHistory struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	StockID   uint            `gorm:"index;not null" json:"stock_id"`
	Stock     Stock           `gorm:"foreignKey:StockID" json:"-"`
	Symbol    string          `gorm:"size:10;not null;uniqueIndex:uq_symbol_date" json:"symbol"`
	Date      time.Time       `gorm:"not null;uniqueIndex:uq_symbol_date" json:"date"`
	Open      decimal.Decimal `gorm:"type:decimal(15,4);not null" json:"open"`
	High      decimal.Decimal `gorm:"type:decimal(15,4);not null" json:"high"`
	Low       decimal.Decimal `gorm:"type:decimal(15,4);not null" json:"low"`
	Close     decimal.Decimal `gorm:"type:decimal(15,4);not null" json:"close"`
	Volume    *int64          `json:"volume"` // null when the provider omits it
	CreatedAt time.Time       `json:"created_at"`
}

// MigrateStockModels runs database migrations for stock-related models
func MigrateStockModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&Stock{},
		&PriceHistory{},
	)
}
