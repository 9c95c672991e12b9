package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"
)

func runGeneratorLoop(ctx context.Context, cfg Config, client *http.Client) {
	rate := cfg.Rate
	if rate <= 0 {
		rate = 1
	}
	period := time.Second / time.Duration(rate)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				log.Println("tradegen: TTL reached; exiting")
			} else {
				log.Println("tradegen: shutting down (signal)")
			}
			return
		case <-ticker.C:
			// jitter
			time.Sleep(time.Duration(rng.Intn(150)) * time.Millisecond)

			t := genTrade()
			if err := postTrade(ctx, client, cfg.TradeURL, t); err != nil {
				log.Printf("post trade %s: %v", t.TradeID, err)
			}
		}
	}
}

func postTrade(ctx context.Context, client *http.Client, url string, t tradeRequest) error {
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	log.Printf("trade %s %s qty=%.0f -> %d", t.TradeID, t.Symbol, t.Quantity, resp.StatusCode)
	return nil
}
