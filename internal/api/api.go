package api

import (
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/trade-pipeline/internal/trace"
)

type apiError struct {
	Error string `json:"error"`
}

// NewEngine builds a gin engine with the middleware every service in
// the chain shares: trace propagation, request logging, recovery, and
// the /health route.
func NewEngine(service string, logger *zap.Logger) *gin.Engine {
	g := gin.New()

	g.Use(trace.Middleware())

	// Request logging
	g.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http_request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("trace_id", trace.ID(c.Request.Context())),
		)
	})

	g.Use(gin.Recovery())

	g.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": service})
	})

	return g
}

// --- Error helpers ---

func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, apiError{Error: msg})
}

func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, apiError{Error: msg})
}

// Fail writes a simulated-failure response with the given status.
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, apiError{Error: msg})
}
