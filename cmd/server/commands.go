package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/trade-pipeline/internal/api"
	"github.com/example/trade-pipeline/internal/config"
	"github.com/example/trade-pipeline/internal/downstream"
	"github.com/example/trade-pipeline/internal/fault"
	"github.com/example/trade-pipeline/internal/models"
	"github.com/example/trade-pipeline/internal/pnl"
	"github.com/example/trade-pipeline/internal/pricing"
	"github.com/example/trade-pipeline/internal/risk"
	"github.com/example/trade-pipeline/internal/store"
	"github.com/example/trade-pipeline/internal/trade"
	"github.com/example/trade-pipeline/pkg/app"
)

func tradeListener(cfg config.Config, logger *zap.Logger) *api.Listener {
	l := logger.With(zap.String("service", "trade_service"))
	n := downstream.NewNotifier(cfg.DownstreamTimeout, l)
	s := trade.NewServer(store.New[models.Trade](), n, cfg.PricingURL, l)
	return api.NewListener("trade_service", ":"+cfg.TradePort, s.R, logger)
}

func pricingListener(cfg config.Config, logger *zap.Logger) *api.Listener {
	l := logger.With(zap.String("service", "pricing_service"))
	n := downstream.NewNotifier(cfg.DownstreamTimeout, l)
	opts := pricing.Options{
		TimeoutDelay: cfg.PricingTimeoutDelay,
		LatencyMin:   cfg.PricingLatencyMin,
		LatencyMax:   cfg.PricingLatencyMax,
	}
	s := pricing.NewServer(fault.Probability(cfg.PricingTimeoutProb), opts, n, cfg.PnLURL, l)
	return api.NewListener("pricing_service", ":"+cfg.PricingPort, s.R, logger)
}

func pnlListener(cfg config.Config, logger *zap.Logger) *api.Listener {
	l := logger.With(zap.String("service", "pnl_service"))
	n := downstream.NewNotifier(cfg.DownstreamTimeout, l)
	s := pnl.NewServer(store.New[models.PnLRecord](), fault.Probability(cfg.PnLFailProb), n, cfg.RiskURL, l)
	return api.NewListener("pnl_service", ":"+cfg.PnLPort, s.R, logger)
}

func riskListener(cfg config.Config, logger *zap.Logger) *api.Listener {
	l := logger.With(zap.String("service", "risk_service"))
	s := risk.NewServer(store.New[models.RiskAssessment](), fault.Probability(cfg.RiskUnavailProb), l)
	return api.NewListener("risk_service", ":"+cfg.RiskPort, s.R, logger)
}

func newTradeCmd(cfg config.Config, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "trade",
		Short: "Run the trade service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServices(cmd.Context(), tradeListener(cfg, logger))
		},
	}
}

func newPricingCmd(cfg config.Config, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "pricing",
		Short: "Run the pricing service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServices(cmd.Context(), pricingListener(cfg, logger))
		},
	}
}

func newPnLCmd(cfg config.Config, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "pnl",
		Short: "Run the P&L service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServices(cmd.Context(), pnlListener(cfg, logger))
		},
	}
}

func newRiskCmd(cfg config.Config, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "risk",
		Short: "Run the risk service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServices(cmd.Context(), riskListener(cfg, logger))
		},
	}
}

func newAllCmd(cfg config.Config, logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run all four services in one process",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServices(cmd.Context(),
				tradeListener(cfg, logger),
				pricingListener(cfg, logger),
				pnlListener(cfg, logger),
				riskListener(cfg, logger),
			)
		},
	}
}

func runServices(ctx context.Context, listeners ...*api.Listener) error {
	a := app.New()
	for _, l := range listeners {
		a = a.WithService(l)
	}
	a = a.WithService(app.Interrupter{})

	err := a.Run(ctx)
	if errors.Is(err, app.ErrInterrupted) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
