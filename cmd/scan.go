package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"chiscan/internal/config"
	"chiscan/internal/scan"
	"chiscan/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runScan performs the configured parameter-space sweep and returns the
// result. It is shared by the scan and visualize commands.
func runScan(ctx context.Context, cfg *config.Config) (*scan.Result, error) {
	opts := scan.NewOptions(cfg)

	logger.Info(ctx, "starting parameter space scan",
		zap.Float64("xMin", opts.XMin),
		zap.Float64("xMax", opts.XMax),
		zap.Float64("yMin", opts.YMin),
		zap.Float64("yMax", opts.YMax),
		zap.Int("points", opts.Points))

	res, err := scan.Run(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("could not run scan: %w", err)
	}

	logger.Info(ctx, "scan finished",
		zap.String("runID", res.RunID.String()),
		zap.Int("totalPoints", res.TotalPoints),
		zap.Int("zeroViolations", res.ZeroViolationCount),
		zap.Float64("validFraction", res.ValidFraction))

	return res, nil
}

func scanCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Sweeps the parameter space and reports boundary statistics",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			res, err := runScan(ctx, cfg)
			if err != nil {
				logger.Fatal(ctx, "scan failed", zap.Error(err))
			}

			fmt.Printf("Run ID:                %s\n", res.RunID)
			fmt.Printf("Total points sampled:  %d\n", res.TotalPoints)
			fmt.Printf("Zero-violation points: %d\n", res.ZeroViolationCount)
			fmt.Printf("Valid fraction:        %.2f%%\n", res.ValidFraction*100)
		},
	}

	return cmd
}
