package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	TradePort   string `env:"TRADE_PORT" envDefault:"5000"`
	PricingPort string `env:"PRICING_PORT" envDefault:"5001"`
	PnLPort     string `env:"PNL_PORT" envDefault:"5002"`
	RiskPort    string `env:"RISK_PORT" envDefault:"5003"`

	PricingURL string `env:"PRICING_URL" envDefault:"http://localhost:5001/prices"`
	PnLURL     string `env:"PNL_URL" envDefault:"http://localhost:5002/pnl"`
	RiskURL    string `env:"RISK_URL" envDefault:"http://localhost:5003/risk"`

	DownstreamTimeout time.Duration `env:"DOWNSTREAM_TIMEOUT" envDefault:"10s"`

	PricingTimeoutProb  float64       `env:"PRICING_TIMEOUT_PROB" envDefault:"0.10"`
	PricingTimeoutDelay time.Duration `env:"PRICING_TIMEOUT_DELAY" envDefault:"5s"`
	PricingLatencyMin   time.Duration `env:"PRICING_LATENCY_MIN" envDefault:"100ms"`
	PricingLatencyMax   time.Duration `env:"PRICING_LATENCY_MAX" envDefault:"500ms"`

	PnLFailProb     float64 `env:"PNL_FAIL_PROB" envDefault:"0.05"`
	RiskUnavailProb float64 `env:"RISK_UNAVAIL_PROB" envDefault:"0.03"`
}

func Load() (Config, error) {
	var cfg Config
	return cfg, env.Parse(&cfg)
}
