package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/trade-pipeline/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	root := &cobra.Command{
		Use:          "pipeline",
		Short:        "Trade pipeline services",
		SilenceUsage: true,
	}

	root.AddCommand(
		newTradeCmd(cfg, logger),
		newPricingCmd(cfg, logger),
		newPnLCmd(cfg, logger),
		newRiskCmd(cfg, logger),
		newAllCmd(cfg, logger),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
