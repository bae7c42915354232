package app

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pencalc/pencalc/internal/cli"
	apperrors "github.com/pencalc/pencalc/internal/errors"
	"github.com/pencalc/pencalc/internal/factorise"
	"github.com/pencalc/pencalc/internal/logging"
	"github.com/pencalc/pencalc/internal/metrics"
	"github.com/pencalc/pencalc/internal/orchestration"
	"github.com/pencalc/pencalc/internal/problems"
	"github.com/pencalc/pencalc/internal/server"
	"github.com/pencalc/pencalc/internal/sweep"
	"github.com/pencalc/pencalc/internal/tui"
	"github.com/pencalc/pencalc/internal/worksheet"
)

// runScore scores the positional expression, or every applicable operation
// in compare mode.
func (a *Application) runScore(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.lifecycle(ctx)
	defer cancel()

	presenter := cli.Presenter{}
	cli.PrintExecutionConfig(a.Config.Radix, a.Config.CacheSize, a.Config.Quiet, out)

	left, right, op, err := cli.ParseExpression(a.Config.Expression)
	if err != nil {
		return presenter.HandleError(err, a.ErrWriter)
	}

	if a.Config.Compare {
		results := orchestration.ExecuteScoring(ctx, left, right, a.Config.Options())
		return orchestration.AnalyzeResults(results, presenter, out)
	}

	result := orchestration.ScoreOperation(op, left, right, a.Config.Options())
	if result.Err != nil {
		return presenter.HandleError(result.Err, a.ErrWriter)
	}
	presenter.PresentScore(result, out)
	return apperrors.ExitSuccess
}

// runREPL starts the interactive session.
func (a *Application) runREPL(ctx context.Context) int {
	ctx, cancel := a.lifecycle(ctx)
	defer cancel()

	repl := cli.NewREPL(a.Config.Options())
	repl.SetFactoriser(a.newFactoriser())
	repl.Start(ctx)
	return apperrors.ExitSuccess
}

// runTUI launches the interactive terminal explorer.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, cancel := a.lifecycle(ctx)
	defer cancel()

	return tui.Run(ctx, a.Config.Options())
}

// runServe runs the HTTP scoring server until interrupted. The execution
// timeout deliberately does not apply here.
func (a *Application) runServe(ctx context.Context) int {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logging.NewLogger(a.ErrWriter, "server")
	srv := server.New(a.Config.Addr, a.Config.Options(), log)
	if err := srv.Run(ctx); err != nil {
		log.Error("server stopped", err)
		return apperrors.ExitCodeFor(err)
	}
	return apperrors.ExitSuccess
}

// runSweep samples random problems and prints the difficulty distribution.
func (a *Application) runSweep(ctx context.Context, out io.Writer) int {
	ctx, cancel := a.lifecycle(ctx)
	defer cancel()

	presenter := cli.Presenter{}
	factory, err := a.newProblemFactory()
	if err != nil {
		return presenter.HandleError(err, a.ErrWriter)
	}

	params := sweep.Params{
		SampleSize: a.Config.SampleSize,
		Precision:  a.Config.Precision,
	}
	if !a.Config.Quiet {
		progress, stopSpinner := cli.SweepProgress(out)
		defer stopSpinner()
		params.OnProgress = progress
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()

	dist, err := sweep.Run(ctx, factory, params)
	if err != nil {
		return presenter.HandleError(err, a.ErrWriter)
	}

	delta := collector.Snapshot().Since(before)
	logging.NewLogger(a.ErrWriter, "sweep").Debug("sweep finished",
		logging.Int("gc_cycles", int(delta.GCCycles)),
		logging.Uint64("gc_pause_ns", delta.PauseTotalNs))

	presenter.PresentDistribution(dist, out)
	return apperrors.ExitSuccess
}

// runWorksheet generates a problem set and renders it as printable HTML.
func (a *Application) runWorksheet(out io.Writer) int {
	presenter := cli.Presenter{}
	factory, err := a.newProblemFactory()
	if err != nil {
		return presenter.HandleError(err, a.ErrWriter)
	}

	maxLevel := a.Config.MaxLevel
	if maxLevel == 0 {
		maxLevel = math.Inf(1)
	}
	scored, err := factory.Generate(problems.GenerateParams{
		Amount:   a.Config.Amount,
		MinLevel: a.Config.MinLevel,
		MaxLevel: maxLevel,
	})
	if err != nil {
		return presenter.HandleError(err, a.ErrWriter)
	}
	if len(scored) < a.Config.Amount {
		fmt.Fprintf(a.ErrWriter, "Warning: found %d of %d problems in the difficulty band\n",
			len(scored), a.Config.Amount)
	}

	set := make([]problems.Problem, len(scored))
	for i, s := range scored {
		set[i] = s.Problem
	}

	meta := worksheet.Meta{
		Title:    "Arithmetic practice",
		Subtitle: fmt.Sprintf("%d problems, difficulty %s", len(set), a.bandLabel()),
		Note:     fmt.Sprintf("Numbers stay within 0-%d.", a.Config.Limit),
	}

	target := out
	if a.Config.OutputFile != "" {
		file, err := os.Create(a.Config.OutputFile)
		if err != nil {
			return presenter.HandleError(apperrors.WrapError(err, "creating worksheet file"), a.ErrWriter)
		}
		defer file.Close()
		target = file
	}

	if err := worksheet.Render(target, set, meta); err != nil {
		return presenter.HandleError(err, a.ErrWriter)
	}
	if a.Config.OutputFile != "" && !a.Config.Quiet {
		fmt.Fprintf(out, "Worksheet with %d problems written to %s\n", len(set), a.Config.OutputFile)
	}
	return apperrors.ExitSuccess
}

// bandLabel describes the configured difficulty band.
func (a *Application) bandLabel() string {
	if a.Config.MaxLevel == 0 {
		return fmt.Sprintf("%g and up", a.Config.MinLevel)
	}
	return fmt.Sprintf("%g to %g", a.Config.MinLevel, a.Config.MaxLevel)
}

// newProblemFactory builds the seeded random problem factory the sweep and
// worksheet modes share.
func (a *Application) newProblemFactory() (*problems.Factory, error) {
	seed := a.Config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	factory, err := problems.NewFactory(a.Config.Terms, a.Config.Limit,
		a.Config.Options(), rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	if err := factory.SetMinusPercent(a.Config.MinusPercent); err != nil {
		return nil, err
	}
	return factory, nil
}

// newFactoriser builds the prime factoriser over the configured cache file.
func (a *Application) newFactoriser() *factorise.Factoriser {
	log := logging.NewLogger(a.ErrWriter, "factorise")

	path := a.Config.PrimeCachePath
	if path == "" {
		resolved, err := factorise.DefaultStorePath()
		if err != nil {
			log.Warn("no home directory; prime cache stays in memory", logging.Err(err))
			return factorise.New(nil, log)
		}
		path = resolved
	}
	return factorise.New(factorise.NewFileStore(path), log)
}
