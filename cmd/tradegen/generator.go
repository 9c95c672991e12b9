package main

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/example/trade-pipeline/internal/domain"
)

var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

var (
	// Known symbols plus a few the pricing service prices at its
	// default base.
	symbols  = []string{"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA"}
	baseline = map[string]float64{"AAPL": 150, "GOOGL": 2800, "MSFT": 300, "AMZN": 180, "TSLA": 220}

	tradeTypes = []domain.TradeType{domain.TradeBuy, domain.TradeSell}
)

func round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}

func pick[T any](xs []T) T { return xs[rng.Intn(len(xs))] }

func genTrade() tradeRequest {
	sym := pick(symbols)
	base := baseline[sym]
	px := round(base*(1+(rng.Float64()-0.5)*0.03), 2) // ±1.5%
	qty := float64(rng.Intn(100) + 1)

	return tradeRequest{
		TradeID:   uuid.NewString(),
		Symbol:    sym,
		Quantity:  qty,
		Price:     px,
		TradeType: pick(tradeTypes),
	}
}
