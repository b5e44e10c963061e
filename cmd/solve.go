package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kherve/classplan/config"
	"github.com/kherve/classplan/core/metrics"
	"github.com/kherve/classplan/core/solver"
	"github.com/kherve/classplan/core/timetable"
	"github.com/kherve/classplan/infra/datasource"
	"github.com/kherve/classplan/infra/logger"
	_ "github.com/kherve/classplan/infra/metrics" // registers builtin sinks
	"github.com/kherve/classplan/internal/eventbus"
	"github.com/kherve/classplan/pkg/export"
)

var (
	inputPath    string
	outputPath   string
	outputFormat string
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a timetabling problem file",
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().StringVarP(&inputPath, "input", "i", "", "problem file (json or yaml)")
	solveCmd.Flags().StringVarP(&outputPath, "output", "o", "", "report file (default stdout)")
	solveCmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "report format: json or csv")
	_ = solveCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := logger.SetGlobalLevel(cfg.Logging.Level); err != nil {
		return err
	}
	logg := logger.New("solve-command")

	problem, err := datasource.Load(inputPath)
	if err != nil {
		return fmt.Errorf("load problem: %w", err)
	}

	sink, err := metrics.NewSolveSink(cfg.Metrics.Sinks)
	if err != nil {
		return fmt.Errorf("metrics sink: %w", err)
	}
	bus := eventbus.New()
	defer bus.Close()

	solution, err := solver.SolveParallel(ctx, cfg.Solver, problem,
		solver.WithLogger(logg),
		solver.WithBus(bus),
		solver.WithSink(sink),
	)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	analysis := timetable.Analyze(solution)
	for name, impact := range analysis.Constraints {
		logg.Infof("%s: %s", name, impact)
	}
	logg.Infof("final score %s (feasible=%t)", analysis.Total, analysis.Total.Feasible())

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	switch outputFormat {
	case "json":
		return export.WriteJSON(out, solution)
	case "csv":
		return export.WriteCSV(out, solution)
	default:
		return fmt.Errorf("unsupported report format: %s", outputFormat)
	}
}
