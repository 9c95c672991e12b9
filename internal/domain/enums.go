package domain

// RiskLevel is the closed set of classifications produced by the risk
// service.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

func (r RiskLevel) String() string { return string(r) }

// TradeType is the direction of a trade.
type TradeType string

const (
	TradeBuy  TradeType = "buy"
	TradeSell TradeType = "sell"
)

func (t TradeType) String() string { return string(t) }

func (t TradeType) Valid() bool {
	return t == TradeBuy || t == TradeSell
}
