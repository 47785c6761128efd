package explorer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bikeshare-explorer/internal/analysis"
	"github.com/bikeshare-explorer/internal/common/logger"
	"github.com/bikeshare-explorer/internal/display"
	"github.com/bikeshare-explorer/pkg/bikeshare/models"
	"github.com/google/uuid"
)

const restartQuestion = "\nWould you like to restart? Enter yes or no."

// Prompter supplies filter selections and yes/no answers.
type Prompter interface {
	Filters() (models.FilterSpec, error)
	Confirm(question string) (bool, error)
}

// DatasetLoader loads the filtered trips for one run.
type DatasetLoader interface {
	Load(ctx context.Context, spec models.FilterSpec) (*models.TripDataset, error)
}

// Explorer owns the outer control loop. Each iteration builds one FilterSpec
// and one TripDataset; nothing survives into the next iteration.
type Explorer struct {
	prompt   Prompter
	loader   DatasetLoader
	engine   *analysis.Engine
	printer  *display.Printer
	out      io.Writer
	pageSize int
	logger   logger.Logger
}

type Config struct {
	PageSize int
}

func New(cfg Config, prompt Prompter, loader DatasetLoader, engine *analysis.Engine, out io.Writer, logger logger.Logger) *Explorer {
	return &Explorer{
		prompt:   prompt,
		loader:   loader,
		engine:   engine,
		printer:  display.NewPrinter(out),
		out:      out,
		pageSize: cfg.PageSize,
		logger:   logger,
	}
}

// Run loops until the operator declines to restart or input runs out.
func (e *Explorer) Run(ctx context.Context) error {
	e.printer.Greeting()

	for {
		spec, err := e.prompt.Filters()
		if err != nil {
			return e.inputDone(err)
		}
		e.printer.Separator()

		runLog := e.logger.With("run_id", uuid.NewString())
		if err := e.runOnce(ctx, spec, runLog); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			runLog.Error("Analysis run failed", "filter", spec.String(), "error", err)
			e.printer.Error(err)
		}

		restart, err := e.prompt.Confirm(restartQuestion)
		if err != nil {
			return e.inputDone(err)
		}
		if !restart {
			return nil
		}
	}
}

func (e *Explorer) runOnce(ctx context.Context, spec models.FilterSpec, log logger.Logger) error {
	log.Info("Analysis run started", "filter", spec.String())

	ds, err := e.loader.Load(ctx, spec)
	if err != nil {
		return err
	}

	report, err := e.engine.Analyze(ds, spec)
	if err != nil {
		return describe(err)
	}
	e.printer.Report(report)

	log.Info("Report displayed", "records", report.Records)

	return display.NewPager(e.out, e.prompt, e.pageSize).Run(ds)
}

func (e *Explorer) inputDone(err error) error {
	if errors.Is(err, io.EOF) {
		e.logger.Debug("Input closed, exiting")
		return nil
	}
	return err
}

// describe adds operator-facing context to aggregation failures.
func describe(err error) error {
	var missing *analysis.MissingCategoryError
	if errors.As(err, &missing) {
		return fmt.Errorf("user statistics: %w", err)
	}
	return err
}
