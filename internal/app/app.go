package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"pageview-analytics/internal/aggregators"
	"pageview-analytics/internal/ingestors"
	"pageview-analytics/internal/reporters"
	"pageview-analytics/internal/shapers"
	"pageview-analytics/internal/shared/configs"
	"pageview-analytics/internal/shared/filestorages"
	"pageview-analytics/internal/shared/loggers"
	"pageview-analytics/internal/shared/metrics"
	"pageview-analytics/internal/shared/patterns"
	"pageview-analytics/internal/shared/svcerrors"
	"pageview-analytics/internal/shared/ulid"
	"pageview-analytics/internal/stores"
	"pageview-analytics/internal/trees"
)

const (
	modeReport = "report"
	modeTree   = "tree"
)

// App holds the components of a single analysis run.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	runID     string
	stdout    io.Writer

	filter           *patterns.Pattern
	aggregator       aggregators.URLAggregator
	ingestionService ingestors.IngestionService
	reporter         reporters.TreeReporter
	shaper           shapers.TreeShaper
	outputStore      stores.OutputStore // nil writes to stdout
}

// Option overrides a default dependency of App.
type Option func(*App)

// WithStdout sets where the report or tree goes when no output directory is configured.
func WithStdout(w io.Writer) Option {
	return func(app *App) {
		app.stdout = w
	}
}

// WithOutputStore replaces the file backed output store.
func WithOutputStore(store stores.OutputStore) Option {
	return func(app *App) {
		app.outputStore = store
	}
}

// New creates and initializes a new App instance.
func New(config *configs.Config, opts ...Option) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level, config.Log.File)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	runID := ulid.NewULID()
	appLogger = appLogger.With().
		Str(loggers.FieldApp, "pageview-analytics").
		Str(loggers.FieldRunID, runID).
		Logger()

	app := &App{
		config:    config,
		appLogger: appLogger,
		runID:     runID,
		stdout:    os.Stdout,
		reporter:  reporters.NewTreeReporter(),
		shaper:    shapers.NewTreeShaper(),
	}

	// Initialize aggregator with the optional URL filter
	var aggregatorOpts []aggregators.Option
	if config.Search != "" {
		filter, err := patterns.Compile(config.Search)
		if err != nil {
			return nil, errInvalidFilter(err)
		}
		app.filter = filter
		aggregatorOpts = append(aggregatorOpts, aggregators.WithURLFilter(filter))
	}
	app.aggregator = aggregators.NewURLAggregator(config.SortField, aggregatorOpts...)
	app.ingestionService = ingestors.NewIngestionService(app.aggregator)

	// Initialize output store
	if config.OutputDir != "" {
		fileStorage, err := filestorages.NewFileStorage(config.OutputDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		app.outputStore = stores.NewOutputStore(fileStorage)
	}

	for _, opt := range opts {
		opt(app)
	}
	return app, nil
}

// RunID identifies this run in logs and output keys.
func (app *App) RunID() string {
	return app.runID
}

// Run ingests the configured export, then writes either the report or the shaped
// tree. Nothing is written when ingestion fails.
func (app *App) Run(ctx context.Context) (err error) {
	start := time.Now()
	ctx = app.appLogger.WithContext(ctx)

	mode := modeReport
	if app.config.Visualize {
		mode = modeTree
	}

	app.appLogger.Info().
		Str(loggers.FieldInput, app.config.Input).
		Str(loggers.FieldSortField, app.config.SortField).
		Str("mode", mode).
		Msg("Starting pageview analysis")

	defer func() {
		app.finish(mode, start, err)
	}()

	if err := app.ingest(ctx); err != nil {
		return err
	}

	if app.config.Visualize {
		return app.writeTree(ctx)
	}
	return app.writeReport(ctx)
}

// Close releases the compiled URL filter.
func (app *App) Close() error {
	if app.filter == nil {
		return nil
	}
	return app.filter.Close()
}

func (app *App) ingest(ctx context.Context) error {
	file, err := os.Open(app.config.Input)
	if err != nil {
		return errInputUnavailable(app.config.Input, err)
	}
	defer file.Close()

	if _, err := app.ingestionService.Ingest(ctx, file); err != nil {
		return err
	}

	counts := trees.Count(app.aggregator.Root())
	for _, role := range []trees.Role{trees.RolePath, trees.RoleParameter, trees.RoleValue} {
		metricTreeNodes.WithLabelValues(string(role)).Set(float64(counts[role]))
	}
	app.appLogger.Debug().
		Int("paths", counts[trees.RolePath]).
		Int("parameters", counts[trees.RoleParameter]).
		Int("values", counts[trees.RoleValue]).
		Msg("built url tree")
	return nil
}

func (app *App) writeReport(ctx context.Context) error {
	root := app.aggregator.Root()

	if app.outputStore == nil {
		if err := app.reporter.Print(app.stdout, root, app.config.SortField, app.config.Descending); err != nil {
			return errInternalOutputFailed(err)
		}
		return nil
	}

	var buf bytes.Buffer
	if err := app.reporter.Print(&buf, root, app.config.SortField, app.config.Descending); err != nil {
		return errInternalOutputFailed(err)
	}
	key, err := app.outputStore.PutReport(ctx, app.runID, &buf)
	if err != nil {
		return err
	}
	app.appLogger.Info().Str(loggers.FieldOutputKey, key).Msg("stored report")
	return nil
}

func (app *App) writeTree(ctx context.Context) error {
	shaped, stats := app.shaper.Prepare(app.aggregator.Root(), app.config.Threshold, app.config.MaxChildren)
	app.appLogger.Debug().
		Int("kept", stats.Kept).
		Int("pruned_threshold", stats.PrunedByThreshold).
		Int("pruned_cap", stats.PrunedByCap).
		Msg("shaped url tree")

	format := stores.TreeFormat(app.config.TreeFormat)
	if app.outputStore == nil {
		return stores.EncodeTree(app.stdout, format, shaped)
	}

	key, err := app.outputStore.PutTree(ctx, app.runID, format, shaped)
	if err != nil {
		return err
	}
	app.appLogger.Info().Str(loggers.FieldOutputKey, key).Msg("stored tree")
	return nil
}

// finish records the run outcome and exports metrics when a textfile is configured.
func (app *App) finish(mode string, start time.Time, err error) {
	errorCode := metrics.ValueNoError
	if err != nil {
		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}
		errorCode = svcErr.Code
		app.appLogger.Error().
			Err(svcErr.Cause).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Dur(loggers.FieldDuration, time.Since(start)).
			Msg(svcErr.Message)
	} else {
		app.appLogger.Info().
			Dur(loggers.FieldDuration, time.Since(start)).
			Msg("Finished pageview analysis")
	}
	metricRunsTotal.WithLabelValues(mode, errorCode).Inc()

	if app.config.MetricsFile == "" {
		return
	}
	if writeErr := metrics.WriteToTextfile(app.config.MetricsFile); writeErr != nil {
		app.appLogger.Warn().Err(writeErr).Str("metrics_file", app.config.MetricsFile).Msg("failed to export metrics")
	}
}
