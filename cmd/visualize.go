package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"chiscan/internal/config"
	"chiscan/internal/render"
	"chiscan/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func visualizeCommand(cfg *config.Config) *cobra.Command {
	var asciiOnly bool

	cmd := &cobra.Command{
		Use:   "visualize",
		Short: "Renders the field as an ASCII map and PNG plots",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err := render.FieldMap(os.Stdout,
				cfg.Scan.XMin, cfg.Scan.XMax,
				cfg.Scan.YMin, cfg.Scan.YMax,
				cfg.Render.ASCIIWidth)
			if err != nil {
				logger.Fatal(ctx, "could not render field map", zap.Error(err))
			}

			if asciiOnly {
				return
			}

			res, err := runScan(ctx, cfg)
			if err != nil {
				logger.Fatal(ctx, "scan failed", zap.Error(err))
			}

			plots := render.Plots{
				OutputDir:  cfg.Render.OutputDir,
				Resolution: cfg.Render.Resolution,
			}

			saved := make([]string, 0, 3)

			path, err := plots.ChiDistribution(res)
			if err != nil {
				logger.Fatal(ctx, "could not render chi distribution", zap.Error(err))
			}
			saved = append(saved, path)

			path, err = plots.LiftElevation(cfg.Scan.XMin, cfg.Scan.XMax, cfg.Scan.YMin, cfg.Scan.YMax)
			if err != nil {
				logger.Fatal(ctx, "could not render lift elevation", zap.Error(err))
			}
			saved = append(saved, path)

			path, err = plots.RadialProfile(1.0)
			if err != nil {
				logger.Fatal(ctx, "could not render radial profile", zap.Error(err))
			}
			saved = append(saved, path)

			logger.Info(ctx, "plots saved", zap.Strings("files", saved))
		},
	}

	cmd.Flags().BoolVar(&asciiOnly, "ascii-only", false, "Skip PNG plots and print only the ASCII map")

	return cmd
}
