package pricing

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	gin "github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/example/trade-pipeline/internal/downstream"
	"github.com/example/trade-pipeline/internal/fault"
	"github.com/example/trade-pipeline/internal/trace"
)

func newTestServer(timeout fault.Strategy, pnlURL string) *Server {
	gin.SetMode(gin.TestMode)
	n := downstream.NewNotifier(time.Second, zap.NewNop())
	// Zero latency bounds and zero timeout delay keep tests fast and
	// deterministic.
	return NewServer(timeout, Options{}, n, pnlURL, zap.NewNop())
}

func postJSON(t *testing.T, g *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/prices", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	g.ServeHTTP(w, req)
	return w
}

func TestComputePriceUnknownSymbolRange(t *testing.T) {
	t.Parallel()

	s := newTestServer(fault.Never(), "http://127.0.0.1:1/pnl")

	for i := 0; i < 25; i++ {
		w := postJSON(t, s.R, map[string]any{"trade_id": "T-1", "symbol": "XXX", "quantity": 10.0})
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "T-1", resp["trade_id"])

		price, ok := resp["computed_price"].(float64)
		require.True(t, ok)
		assert.GreaterOrEqual(t, price, 95.0)
		assert.LessOrEqual(t, price, 105.0)
	}
}

func TestComputePriceKnownSymbolRange(t *testing.T) {
	t.Parallel()

	s := newTestServer(fault.Never(), "http://127.0.0.1:1/pnl")

	w := postJSON(t, s.R, map[string]any{"trade_id": "T-1", "symbol": "GOOGL", "quantity": 1.0})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	price := resp["computed_price"].(float64)
	assert.GreaterOrEqual(t, price, 2795.0)
	assert.LessOrEqual(t, price, 2805.0)
}

func TestComputePriceTimeout(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	pnlSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer pnlSrv.Close()

	s := newTestServer(fault.Always(), pnlSrv.URL)

	w := postJSON(t, s.R, map[string]any{"trade_id": "T-1", "symbol": "AAPL", "quantity": 10.0})
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.JSONEq(t, `{"error":"Timeout"}`, w.Body.String())

	// The timeout short-circuits the chain: no P&L hop.
	assert.Equal(t, int32(0), calls.Load())
}

func TestComputePriceZeroQuantityAccepted(t *testing.T) {
	t.Parallel()

	s := newTestServer(fault.Never(), "http://127.0.0.1:1/pnl")

	w := postJSON(t, s.R, map[string]any{"trade_id": "T-1", "symbol": "AAPL", "quantity": 0.0})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestComputePriceValidation(t *testing.T) {
	t.Parallel()

	s := newTestServer(fault.Never(), "http://127.0.0.1:1/pnl")

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing_trade_id", map[string]any{"symbol": "AAPL", "quantity": 10}},
		{"missing_symbol", map[string]any{"trade_id": "T-1", "quantity": 10}},
		{"missing_quantity", map[string]any{"trade_id": "T-1", "symbol": "AAPL"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := postJSON(t, s.R, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error":"Missing trade_id, symbol, or quantity"}`, w.Body.String())
		})
	}
}

func TestComputePriceForwardsToPnL(t *testing.T) {
	t.Parallel()

	var gotTrace atomic.Value
	var gotBody atomic.Value
	pnlSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTrace.Store(r.Header.Get(trace.Header))
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotBody.Store(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer pnlSrv.Close()

	s := newTestServer(fault.Never(), pnlSrv.URL)

	b, _ := json.Marshal(map[string]any{"trade_id": "T-9", "symbol": "MSFT", "quantity": 7.0})
	req := httptest.NewRequest(http.MethodPost, "/prices", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(trace.Header, "trace-9")
	w := httptest.NewRecorder()
	s.R.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "trace-9", gotTrace.Load())
	body, _ := gotBody.Load().(map[string]any)
	require.NotNil(t, body)
	assert.Equal(t, "T-9", body["trade_id"])
	assert.Equal(t, "MSFT", body["symbol"])
	assert.Equal(t, 7.0, body["quantity"])
	// The forwarded price is exactly the one returned upstream.
	assert.Equal(t, resp["computed_price"], body["price"])
}

func TestQuoteUsesDefaultBase(t *testing.T) {
	t.Parallel()

	s := newTestServer(fault.Never(), "http://127.0.0.1:1/pnl")

	for i := 0; i < 25; i++ {
		p := s.quote("UNLISTED")
		assert.GreaterOrEqual(t, p, 95.0)
		assert.LessOrEqual(t, p, 105.0)
	}
}
