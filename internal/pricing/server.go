package pricing

import (
	"math/rand"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/trade-pipeline/internal/api"
	"github.com/example/trade-pipeline/internal/downstream"
	"github.com/example/trade-pipeline/internal/fault"
	"github.com/example/trade-pipeline/internal/models"
	"github.com/example/trade-pipeline/internal/trace"
)

const serviceName = "pricing_service"

var basePrices = map[string]float64{
	"AAPL":  150.0,
	"GOOGL": 2800.0,
	"MSFT":  300.0,
}

const defaultBasePrice = 100.0

// Options bound the simulated compute latency and the delay taken on
// the slow-failure path.
type Options struct {
	TimeoutDelay time.Duration
	LatencyMin   time.Duration
	LatencyMax   time.Duration
}

type Server struct {
	R        *gin.Engine
	timeout  fault.Strategy
	opts     Options
	notifier *downstream.Notifier
	pnlURL   string
	logger   *zap.Logger
	sleep    func(time.Duration)
}

type priceRequest struct {
	TradeID  string   `json:"trade_id"`
	Symbol   string   `json:"symbol"`
	Quantity *float64 `json:"quantity"`
}

type pnlRequest struct {
	TradeID  string  `json:"trade_id"`
	Symbol   string  `json:"symbol"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

// NewServer wires the pricing router. Quotes are ephemeral: nothing is
// stored here, the price only travels onward to the P&L hop.
func NewServer(timeout fault.Strategy, opts Options, notifier *downstream.Notifier, pnlURL string, logger *zap.Logger) *Server {
	s := &Server{
		timeout:  timeout,
		opts:     opts,
		notifier: notifier,
		pnlURL:   pnlURL,
		logger:   logger,
		sleep:    time.Sleep,
	}

	g := api.NewEngine(serviceName, logger)
	g.POST("/prices", s.computePrice)
	s.R = g

	return s
}

func (s *Server) computePrice(c *gin.Context) {
	ctx := c.Request.Context()
	log := s.logger.With(zap.String("trace_id", trace.ID(ctx)))

	var req priceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("invalid JSON payload", zap.Error(err))
		api.BadRequest(c, "Invalid JSON")
		return
	}
	// Quantity is null-checked only: zero is a valid quantity here.
	if req.TradeID == "" || req.Symbol == "" || req.Quantity == nil {
		log.Error("missing trade_id, symbol, or quantity")
		api.BadRequest(c, "Missing trade_id, symbol, or quantity")
		return
	}

	// Slow failure: hold the request for the full delay, then give up.
	// Checked before any price work.
	if s.timeout.Trip() {
		s.sleep(s.opts.TimeoutDelay)
		log.Error("price computation timed out", zap.String("trade_id", req.TradeID))
		api.Fail(c, http.StatusGatewayTimeout, "Timeout")
		return
	}

	price := s.quote(req.Symbol)

	log.Info("price computed",
		zap.String("trade_id", req.TradeID),
		zap.String("symbol", req.Symbol),
		zap.Float64("computed_price", price),
	)

	c.JSON(http.StatusOK, models.PriceQuote{TradeID: req.TradeID, ComputedPrice: price})

	s.notifier.Notify(ctx, "pnl_service", s.pnlURL, pnlRequest{
		TradeID:  req.TradeID,
		Symbol:   req.Symbol,
		Price:    price,
		Quantity: *req.Quantity,
	})
}

// quote simulates compute latency, then draws the price uniformly
// within ±5 of the symbol's base.
func (s *Server) quote(symbol string) float64 {
	if span := s.opts.LatencyMax - s.opts.LatencyMin; span > 0 {
		s.sleep(s.opts.LatencyMin + time.Duration(rand.Int63n(int64(span)+1)))
	}

	base, ok := basePrices[symbol]
	if !ok {
		base = defaultBasePrice
	}
	return base + (rand.Float64()*10 - 5)
}
