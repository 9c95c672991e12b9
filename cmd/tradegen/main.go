package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"
)

// tradegen drives the whole chain by posting randomly generated trades
// to the trade service at a configured rate.
func main() {
	cfg := LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !cfg.StayAlive {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.TTL)
		defer cancel()
	}

	client := &http.Client{Timeout: 30 * time.Second}

	log.Printf("tradegen: posting to %s at %d/s", cfg.TradeURL, cfg.Rate)
	runGeneratorLoop(ctx, cfg, client)
}
