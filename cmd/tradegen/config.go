package main

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	TradeURL  string
	Rate      int
	StayAlive bool
	TTL       time.Duration
}

func LoadConfig() Config {
	url := envOr("TRADE_URL", "http://localhost:5000/trades")

	rate := 1
	if v := strings.TrimSpace(os.Getenv("TRADES_PER_SEC")); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 && i <= 50 {
			rate = i
		}
	}

	stayAlive := parseBoolEnv("GEN_STAY_ALIVE", false)

	ttl := 2 * time.Minute
	if raw := strings.TrimSpace(os.Getenv("GEN_TTL")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil {
			ttl = d
		} else {
			log.Printf("WARN: invalid GEN_TTL=%q, using default %s", raw, ttl)
		}
	}

	return Config{
		TradeURL:  url,
		Rate:      rate,
		StayAlive: stayAlive,
		TTL:       ttl,
	}
}

func envOr(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func parseBoolEnv(k string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(k)))
	switch v {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
