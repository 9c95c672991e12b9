package models

import (
	"time"

	"github.com/example/trade-pipeline/internal/domain"
)

type Trade struct {
	TradeID   string           `json:"trade_id"`
	Symbol    string           `json:"symbol"`
	Quantity  float64          `json:"quantity"`
	Price     float64          `json:"price"`
	TradeType domain.TradeType `json:"trade_type"`
	Timestamp time.Time        `json:"timestamp"`
}

// PriceQuote is computed per request and returned, never stored.
type PriceQuote struct {
	TradeID       string  `json:"trade_id"`
	ComputedPrice float64 `json:"computed_price"`
}

type PnLRecord struct {
	TradeID  string  `json:"trade_id"`
	PnLValue float64 `json:"pnl_value"`
	Symbol   string  `json:"symbol"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
	Cost     float64 `json:"cost"`
}

type RiskAssessment struct {
	TradeID   string           `json:"trade_id"`
	RiskLevel domain.RiskLevel `json:"risk_level"`
	PnLValue  float64          `json:"pnl_value"`
	Quantity  float64          `json:"quantity"`
}
