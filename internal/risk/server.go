package risk

import (
	"net/http"

	gin "github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/trade-pipeline/internal/api"
	"github.com/example/trade-pipeline/internal/domain"
	"github.com/example/trade-pipeline/internal/fault"
	"github.com/example/trade-pipeline/internal/models"
	"github.com/example/trade-pipeline/internal/store"
	"github.com/example/trade-pipeline/internal/trace"
)

const serviceName = "risk_service"

type Server struct {
	R           *gin.Engine
	store       *store.Store[models.RiskAssessment]
	unavailable fault.Strategy
	logger      *zap.Logger
}

type riskRequest struct {
	TradeID  string   `json:"trade_id"`
	PnLValue *float64 `json:"pnl_value"`
	Quantity *float64 `json:"quantity"`
}

// NewServer wires the risk router and store. Terminal hop: there is no
// downstream call.
func NewServer(st *store.Store[models.RiskAssessment], unavailable fault.Strategy, logger *zap.Logger) *Server {
	s := &Server{
		store:       st,
		unavailable: unavailable,
		logger:      logger,
	}

	g := api.NewEngine(serviceName, logger)
	g.POST("/risk", s.assessRisk)
	g.GET("/risk/:trade_id", s.getRisk)
	s.R = g

	return s
}

// Classify maps P&L and quantity to a risk level. Order matters: a
// losing position above 50 units outranks the deep-loss check.
func Classify(pnlValue, quantity float64) domain.RiskLevel {
	switch {
	case pnlValue < 0 && quantity > 50:
		return domain.RiskHigh
	case pnlValue < -100:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

func (s *Server) assessRisk(c *gin.Context) {
	ctx := c.Request.Context()
	log := s.logger.With(zap.String("trace_id", trace.ID(ctx)))

	var req riskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("invalid JSON payload", zap.Error(err))
		api.BadRequest(c, "Invalid JSON")
		return
	}
	// pnl_value and quantity are null-checked only: zero is accepted.
	if req.TradeID == "" || req.PnLValue == nil || req.Quantity == nil {
		log.Error("missing required fields")
		api.BadRequest(c, "Missing required fields")
		return
	}

	level := Classify(*req.PnLValue, *req.Quantity)

	// Classified but not yet stored.
	if s.unavailable.Trip() {
		log.Error("risk assessment failed due to external data unavailability", zap.String("trade_id", req.TradeID))
		api.Fail(c, http.StatusServiceUnavailable, "External data unavailability")
		return
	}

	a := models.RiskAssessment{
		TradeID:   req.TradeID,
		RiskLevel: level,
		PnLValue:  *req.PnLValue,
		Quantity:  *req.Quantity,
	}
	s.store.Put(a.TradeID, a)

	log.Info("risk assessed",
		zap.String("trade_id", a.TradeID),
		zap.String("risk_level", a.RiskLevel.String()),
	)

	c.JSON(http.StatusOK, gin.H{"trade_id": a.TradeID, "risk_level": a.RiskLevel})
}

func (s *Server) getRisk(c *gin.Context) {
	id := c.Param("trade_id")

	a, ok := s.store.Get(id)
	if !ok {
		s.logger.Warn("risk assessment not found",
			zap.String("trade_id", id),
			zap.String("trace_id", trace.ID(c.Request.Context())),
		)
		api.NotFound(c, "Risk assessment not found")
		return
	}
	c.JSON(http.StatusOK, a)
}
