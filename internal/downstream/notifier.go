package downstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/example/trade-pipeline/internal/trace"
)

// Notifier issues best-effort POSTs to the next hop of the chain. By
// the time Notify runs the caller has already written its own response,
// so nothing observed here can change it: outcomes are logged and
// swallowed, and on failure the chain simply stops advancing.
type Notifier struct {
	client *http.Client
	logger *zap.Logger
}

func NewNotifier(timeout time.Duration, logger *zap.Logger) *Notifier {
	return &Notifier{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// Notify POSTs payload to url with the trace id from ctx forwarded
// unchanged. Never returns an error: transport failures and non-200
// statuses are logged at the call site and dropped.
func (n *Notifier) Notify(ctx context.Context, target, url string, payload any) {
	log := n.logger.With(
		zap.String("target", target),
		zap.String("trace_id", trace.ID(ctx)),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error("downstream payload marshal failed", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Error("downstream request build failed", zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if id := trace.ID(ctx); id != "" {
		req.Header.Set(trace.Header, id)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		log.Error("downstream call failed", zap.Error(err))
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		log.Warn("downstream call rejected", zap.Int("status", resp.StatusCode))
		return
	}
	log.Info("downstream call succeeded")
}
