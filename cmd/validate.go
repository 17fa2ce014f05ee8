package main

import (
	"context"
	"fmt"
	"math"
	"os/signal"
	"strings"
	"syscall"

	"chiscan/internal/config"
	"chiscan/pkg/boundary"
	"chiscan/pkg/field"
	"chiscan/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const ruleWidth = 70

func rule() string { return strings.Repeat("-", ruleWidth) }

func banner(title string) {
	fmt.Println(strings.Repeat("=", ruleWidth))
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", ruleWidth))
}

func status(c boundary.Condition) string {
	if c.Valid {
		return "VALID"
	}

	return "INVALID"
}

// validateCommand runs the full validation workflow: single-point
// classification, chi sample table, critical radius, the 2D to 3D
// transform, a parameter-space sweep and the metric perturbation table.
func validateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Runs the boundary validation workflow and prints a report",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			banner("CHI BOUNDARY VALIDATION")
			fmt.Println()

			fmt.Println("Part 1: threshold constants")
			fmt.Println(rule())
			fmt.Printf("Critical threshold: chi = %v\n", boundary.Threshold)
			fmt.Printf("Tolerance:          %v\n", boundary.Tolerance)
			fmt.Println()

			fmt.Println("Part 2: single point classification")
			fmt.Println(rule())
			for _, chi := range []float64{0.10, 0.15, 0.20, 0.25} {
				c := boundary.Classify(chi)
				fmt.Printf("chi = %.3f: %-7s (distance from boundary: %.3f)\n", chi, status(c), c.Distance)
			}
			fmt.Println()

			fmt.Println("Part 3: chi over sample points")
			fmt.Println(rule())
			fmt.Printf("%-16s %-12s %-12s %s\n", "Point (x, y)", "Radius r", "chi", "Status")
			samplePoints := [][2]float64{
				{0.0, 0.0},
				{0.1, 0.0},
				{0.1, 0.1},
				{0.2, 0.2},
				{0.3, 0.3},
				{0.5, 0.5},
			}
			for _, pt := range samplePoints {
				x, y := pt[0], pt[1]
				r := math.Hypot(x, y)
				chi := field.Chi(x, y)
				c := boundary.Classify(chi)
				fmt.Printf("(%4.1f, %4.1f)     %-12.6f %-12.6f %s\n", x, y, r, chi, status(c))
			}
			fmt.Println()

			fmt.Println("Part 4: critical radius")
			fmt.Println(rule())
			if rc, ok := field.CriticalRadius(boundary.Threshold); ok {
				fmt.Printf("Critical radius: r_c = %.6f (chi crosses %.2f along x = y)\n", rc, boundary.Threshold)
				fmt.Println("Points with r < r_c are valid; beyond it chi exceeds the")
				fmt.Println("threshold until the field decays again at large radius.")
			} else {
				logger.Warn(ctx, "no critical radius for configured threshold")
			}
			fmt.Println()

			fmt.Println("Part 5: 2D to 3D transform")
			fmt.Println(rule())
			fmt.Printf("%-16s %-36s %s\n", "2D point", "3D point", "chi")
			liftPoints := [][2]float64{
				{0.1, 0.1},
				{0.2, 0.15},
				{0.3, 0.2},
				{0.5, 0.5},
			}
			for _, pt := range liftPoints {
				p := field.Lift(pt[0], pt[1])
				chi := field.Chi(pt[0], pt[1])
				fmt.Printf("(%.2f, %.2f)     (%.4f, %.4f, %.4e)     chi=%.4f\n",
					pt[0], pt[1], p.X, p.Y, p.Z, chi)
			}
			fmt.Println()

			fmt.Println("Part 6: parameter space scan")
			fmt.Println(rule())
			res, err := runScan(ctx, cfg)
			if err != nil {
				logger.Fatal(ctx, "scan failed", zap.Error(err))
			}
			fmt.Printf("Total points sampled:  %d\n", res.TotalPoints)
			fmt.Printf("Zero-violation points: %d\n", res.ZeroViolationCount)
			fmt.Printf("Valid fraction:        %.2f%%\n", res.ValidFraction*100)
			fmt.Println()

			fmt.Println("Part 7: vacuum geometry metric")
			fmt.Println(rule())
			fmt.Printf("%-24s %-12s %s\n", "3D point", "g00", "Deviation")
			metricPoints := [][3]float64{
				{0.1, 0.1, 0.01},
				{0.2, 0.15, 0.02},
				{0.3, 0.2, 0.02},
				{0.5, 0.5, 0.05},
			}
			for _, pt := range metricPoints {
				g00 := field.MetricG00(pt[0], pt[1], pt[2])
				fmt.Printf("(%.2f, %.2f, %.2f)       %-12.6f %.4e\n",
					pt[0], pt[1], pt[2], g00, math.Abs(g00-1.0))
			}
			fmt.Println()

			banner("VALIDATION COMPLETE")
		},
	}

	return cmd
}
