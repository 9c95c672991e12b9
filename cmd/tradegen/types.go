package main

import "github.com/example/trade-pipeline/internal/domain"

type tradeRequest struct {
	TradeID   string           `json:"trade_id"`
	Symbol    string           `json:"symbol"`
	Quantity  float64          `json:"quantity"`
	Price     float64          `json:"price"`
	TradeType domain.TradeType `json:"trade_type"`
}
