package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"stock_insights_backend/services"
	"stock_insights_backend/services/ingest"
	"stock_insights_backend/store"

	"github.com/gin-gonic/gin"
)

// StockController handles price history, indicator and fetch requests
type StockController struct {
	store      store.PriceStore
	engine     *ingest.Engine
	indicators *services.IndicatorService
}

// NewStockController creates a new stock controller
func NewStockController(st store.PriceStore, engine *ingest.Engine, indicators *services.IndicatorService) *StockController {
	return &StockController{
		store:      st,
		engine:     engine,
		indicators: indicators,
	}
}

// GetHistory returns the stored price history for a symbol
// GET /api/v1/stock/:symbol/history
func (sc *StockController) GetHistory(c *gin.Context) {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))

	bars, err := sc.store.AllBars(symbol)
	if err != nil {
		respond(c, http.StatusInternalServerError, false, "Error occurred !", err.Error())
		return
	}
	if len(bars) == 0 {
		respond(c, http.StatusNotFound, false, "Stock not found", nil)
		return
	}

	respond(c, http.StatusOK, true, "Details Fetched Successfully", bars)
}

// GetIndicators computes the requested indicators for a symbol
// GET /api/v1/stock/:symbol/indicators?rsi=true&macd=true&sma=20&sma=50&ema=12
func (sc *StockController) GetIndicators(c *gin.Context) {
	symbol := c.Param("symbol")

	req := services.IndicatorRequest{
		RSI:  strings.EqualFold(c.Query("rsi"), "true"),
		MACD: strings.EqualFold(c.Query("macd"), "true"),
	}

	var err error
	if req.SMA, err = parseWindows(c.QueryArray("sma")); err != nil {
		respond(c, http.StatusBadRequest, false, "Invalid sma window", err.Error())
		return
	}
	if req.EMA, err = parseWindows(c.QueryArray("ema")); err != nil {
		respond(c, http.StatusBadRequest, false, "Invalid ema window", err.Error())
		return
	}

	bundle, err := sc.indicators.Compute(symbol, req)
	if err != nil {
		if errors.Is(err, services.ErrNoPriceData) {
			respond(c, http.StatusNotFound, false, "Error occurred !", err.Error())
			return
		}
		respond(c, http.StatusInternalServerError, false, "Error occurred !", err.Error())
		return
	}

	respond(c, http.StatusOK, true, "Details Fetched Successfully", bundle)
}

// FetchStockData fetches and stores fresh bars for a symbol on demand
// POST /api/v1/stock/fetch {"symbol": "NVDA"}
func (sc *StockController) FetchStockData(c *gin.Context) {
	var request struct {
		Symbol string `json:"symbol"`
	}

	if err := c.ShouldBindJSON(&request); err != nil || strings.TrimSpace(request.Symbol) == "" {
		respond(c, http.StatusBadRequest, false, "Missing symbol", nil)
		return
	}

	result, err := sc.engine.Refresh(c.Request.Context(), request.Symbol)
	if err != nil {
		respond(c, http.StatusInternalServerError, false, "Error occurred !", err.Error())
		return
	}

	message := fmt.Sprintf("Data fetched and stored for %s", strings.ToUpper(request.Symbol))
	respond(c, http.StatusOK, true, message, result)
}

// parseWindows converts repeated query values like ?sma=20&sma=50 into
// window sizes
func parseWindows(values []string) ([]int, error) {
	if len(values) == 0 {
		return nil, nil
	}
	windows := make([]int, 0, len(values))
	for _, v := range values {
		w, err := strconv.Atoi(v)
		if err != nil || w <= 0 {
			return nil, fmt.Errorf("invalid window %q", v)
		}
		windows = append(windows, w)
	}
	return windows, nil
}
