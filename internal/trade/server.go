package trade

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/trade-pipeline/internal/api"
	"github.com/example/trade-pipeline/internal/domain"
	"github.com/example/trade-pipeline/internal/downstream"
	"github.com/example/trade-pipeline/internal/models"
	"github.com/example/trade-pipeline/internal/store"
	"github.com/example/trade-pipeline/internal/trace"
)

const serviceName = "trade_service"

type Server struct {
	R          *gin.Engine
	store      *store.Store[models.Trade]
	notifier   *downstream.Notifier
	pricingURL string
	logger     *zap.Logger
	now        func() time.Time
}

type createTradeRequest struct {
	TradeID   string  `json:"trade_id"`
	Symbol    string  `json:"symbol"`
	Quantity  float64 `json:"quantity"`
	Price     float64 `json:"price"`
	TradeType string  `json:"trade_type"`
}

type pricingRequest struct {
	TradeID  string  `json:"trade_id"`
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
}

// NewServer wires the trade router, store, and pricing notifier.
func NewServer(st *store.Store[models.Trade], notifier *downstream.Notifier, pricingURL string, logger *zap.Logger) *Server {
	s := &Server{
		store:      st,
		notifier:   notifier,
		pricingURL: pricingURL,
		logger:     logger,
		now:        time.Now,
	}

	g := api.NewEngine(serviceName, logger)
	g.POST("/trades", s.createTrade)
	g.GET("/trades/:trade_id", s.getTrade)
	s.R = g

	return s
}

func (s *Server) createTrade(c *gin.Context) {
	ctx := c.Request.Context()
	log := s.logger.With(zap.String("trace_id", trace.ID(ctx)))

	var req createTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("invalid JSON payload", zap.Error(err))
		api.BadRequest(c, "Invalid JSON")
		return
	}
	if req.TradeID == "" || req.Symbol == "" || req.Quantity == 0 || req.Price == 0 || req.TradeType == "" {
		log.Error("missing required fields")
		api.BadRequest(c, "Missing required fields")
		return
	}

	t := models.Trade{
		TradeID:   req.TradeID,
		Symbol:    req.Symbol,
		Quantity:  req.Quantity,
		Price:     req.Price,
		TradeType: domain.TradeType(req.TradeType),
		Timestamp: s.now().UTC(),
	}
	s.store.Put(t.TradeID, t)

	log.Info("trade created",
		zap.String("trade_id", t.TradeID),
		zap.String("symbol", t.Symbol),
	)

	c.JSON(http.StatusCreated, gin.H{"message": "Trade created", "trade_id": t.TradeID})

	// Response is already written; the pricing hop cannot change it.
	s.notifier.Notify(ctx, "pricing_service", s.pricingURL, pricingRequest{
		TradeID:  t.TradeID,
		Symbol:   t.Symbol,
		Quantity: t.Quantity,
	})
}

func (s *Server) getTrade(c *gin.Context) {
	id := c.Param("trade_id")

	t, ok := s.store.Get(id)
	if !ok {
		s.logger.Warn("trade not found",
			zap.String("trade_id", id),
			zap.String("trace_id", trace.ID(c.Request.Context())),
		)
		api.NotFound(c, "Trade not found")
		return
	}
	c.JSON(http.StatusOK, t)
}
