package pnl

import (
	"net/http"

	gin "github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/trade-pipeline/internal/api"
	"github.com/example/trade-pipeline/internal/downstream"
	"github.com/example/trade-pipeline/internal/fault"
	"github.com/example/trade-pipeline/internal/models"
	"github.com/example/trade-pipeline/internal/store"
	"github.com/example/trade-pipeline/internal/trace"
)

const serviceName = "pnl_service"

// Reference cost basis per symbol for realized P&L.
var costBasis = map[string]float64{
	"AAPL":  140.0,
	"GOOGL": 2700.0,
	"MSFT":  280.0,
}

const defaultCostBasis = 90.0

type Server struct {
	R             *gin.Engine
	store         *store.Store[models.PnLRecord]
	inconsistency fault.Strategy
	notifier      *downstream.Notifier
	riskURL       string
	logger        *zap.Logger
}

type pnlRequest struct {
	TradeID  string  `json:"trade_id"`
	Symbol   string  `json:"symbol"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
}

type riskRequest struct {
	TradeID  string  `json:"trade_id"`
	PnLValue float64 `json:"pnl_value"`
	Quantity float64 `json:"quantity"`
}

// NewServer wires the P&L router, store, and risk notifier.
func NewServer(st *store.Store[models.PnLRecord], inconsistency fault.Strategy, notifier *downstream.Notifier, riskURL string, logger *zap.Logger) *Server {
	s := &Server{
		store:         st,
		inconsistency: inconsistency,
		notifier:      notifier,
		riskURL:       riskURL,
		logger:        logger,
	}

	g := api.NewEngine(serviceName, logger)
	g.POST("/pnl", s.computePnL)
	g.GET("/pnl/:trade_id", s.getPnL)
	s.R = g

	return s
}

func (s *Server) computePnL(c *gin.Context) {
	ctx := c.Request.Context()
	log := s.logger.With(zap.String("trace_id", trace.ID(ctx)))

	var req pnlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("invalid JSON payload", zap.Error(err))
		api.BadRequest(c, "Invalid JSON")
		return
	}
	if req.TradeID == "" || req.Symbol == "" || req.Price == 0 || req.Quantity == 0 {
		log.Error("missing required fields")
		api.BadRequest(c, "Missing required fields")
		return
	}

	cost, ok := costBasis[req.Symbol]
	if !ok {
		cost = defaultCostBasis
	}
	pnlValue := (req.Price - cost) * req.Quantity

	// Computed but not yet stored: the inconsistency path drops the
	// value entirely.
	if s.inconsistency.Trip() {
		log.Error("pnl computation failed due to data inconsistency", zap.String("trade_id", req.TradeID))
		api.Fail(c, http.StatusInternalServerError, "Data inconsistency")
		return
	}

	rec := models.PnLRecord{
		TradeID:  req.TradeID,
		PnLValue: pnlValue,
		Symbol:   req.Symbol,
		Price:    req.Price,
		Quantity: req.Quantity,
		Cost:     cost,
	}
	s.store.Put(rec.TradeID, rec)

	log.Info("pnl computed",
		zap.String("trade_id", rec.TradeID),
		zap.Float64("pnl_value", rec.PnLValue),
	)

	c.JSON(http.StatusOK, gin.H{"trade_id": rec.TradeID, "pnl_value": rec.PnLValue})

	s.notifier.Notify(ctx, "risk_service", s.riskURL, riskRequest{
		TradeID:  rec.TradeID,
		PnLValue: rec.PnLValue,
		Quantity: rec.Quantity,
	})
}

func (s *Server) getPnL(c *gin.Context) {
	id := c.Param("trade_id")

	rec, ok := s.store.Get(id)
	if !ok {
		s.logger.Warn("pnl not found",
			zap.String("trade_id", id),
			zap.String("trace_id", trace.ID(c.Request.Context())),
		)
		api.NotFound(c, "P&L not found")
		return
	}
	c.JSON(http.StatusOK, rec)
}
