package cmd

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/dumbtip/internal/application/port"
	"github.com/bnema/dumbtip/internal/application/usecase"
	"github.com/bnema/dumbtip/internal/cli/styles"
	"github.com/bnema/dumbtip/internal/infrastructure/overlay"
	"github.com/bnema/dumbtip/internal/infrastructure/scenario"
	"github.com/bnema/dumbtip/internal/logging"
	"github.com/bnema/dumbtip/internal/ui/mainloop"
)

var simulateJSON bool

var simulateCmd = &cobra.Command{
	Use:   "simulate FILE...",
	Short: "Replay scripted hover sessions on virtual time",
	Long: `Replay one or more scenario files against real tooltip instances.

Time is simulated, so a scenario spanning seconds runs instantly. Every
file gets its own registry and clock; files run in parallel and results
are printed in argument order. The command fails if any scenario could
not be parsed or ever had two tooltips attached at once.

Example:
  dumbtip simulate testdata/scenarios/*.toml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSimulate,
}

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateCmd.Flags().BoolVar(&simulateJSON, "json", false, "print timelines as JSON")
}

// simulationResult is the outcome of one scenario file.
type simulationResult struct {
	File   string                  `json:"file"`
	Output *usecase.SimulateOutput `json:"output,omitempty"`
	Error  string                  `json:"error,omitempty"`

	err error
}

func runSimulate(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	results, err := simulateFiles(app.Ctx(), args)
	if err != nil {
		return err
	}

	if simulateJSON {
		if err := writeJSON(cmd, results); err != nil {
			return err
		}
	} else {
		renderer := styles.NewSimulationRenderer(app.Theme)
		for i, r := range results {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			if r.Output == nil {
				fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderFailure(r.File, r.err))
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(r.Output, r.err))
		}
	}

	failed := 0
	for _, r := range results {
		if r.err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	return nil
}

// simulateFiles runs every file concurrently and returns one result per
// file, in order. Per-file failures are recorded in the result; the
// returned error is only set when ctx is cancelled.
func simulateFiles(ctx context.Context, files []string) ([]simulationResult, error) {
	uc := usecase.NewSimulateUseCase(
		func() port.VirtualClock { return mainloop.NewVirtualScheduler() },
		func() port.OverlayHost { return overlay.NewRecorder(0, 0) },
	)
	log := logging.FromContext(ctx)

	results := make([]simulationResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, file := range files {
		g.Go(func() error {
			res := simulationResult{File: file}
			defer func() { results[i] = res }()

			sc, err := scenario.Load(file)
			if err != nil {
				res.err = err
				res.Error = err.Error()
				return nil
			}
			out, err := uc.Execute(gctx, usecase.SimulateInput{Scenario: sc})
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			res.Output = out
			if err != nil {
				res.err = err
				res.Error = err.Error()
				log.Debug().Err(err).Str("file", file).Msg("scenario failed")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
