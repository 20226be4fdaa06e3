package app

import (
	"context"
	"errors"
	"io"
	"syscall"

	"github.com/you-humble/coffee-truck/platform/closer"
	"github.com/you-humble/coffee-truck/platform/logger"
	"github.com/you-humble/coffee-truck/truck/internal/config"
)

// Options carries the process streams and the values given on the command
// line. Non-nil overrides win over the environment.
type Options struct {
	In  io.Reader
	Out io.Writer

	MaxVolume    *float64
	ManifestPath *string
	MinQuality   *float64
	MaxQuality   *float64
}

type app struct {
	di   *di
	opts Options
}

func New(ctx context.Context, opts Options) (*app, error) {
	a := &app{opts: opts}

	if err := a.init(ctx); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *app) Run(ctx context.Context) error { return a.run(ctx) }

func (a *app) init(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initLogger,
		a.initCloser,
		a.initDI,
	}

	for _, initFn := range inits {
		if err := initFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) initConfig(_ context.Context) error {
	return config.Load()
}

func (a *app) initLogger(_ context.Context) error {
	return logger.Init(
		config.C().Logger.Level(),
		config.C().Logger.AsJSON(),
	)
}

func (a *app) initCloser(_ context.Context) error {
	closer.SetLogger(logger.L())
	closer.AddNamed("Logger", func(context.Context) error {
		// stderr on a terminal cannot be synced
		if err := logger.Sync(); err != nil &&
			!errors.Is(err, syscall.EINVAL) && !errors.Is(err, syscall.ENOTTY) {
			return err
		}
		return nil
	})
	return nil
}

func (a *app) initDI(_ context.Context) error {
	a.di = NewDI(a.opts)
	return nil
}

func (a *app) run(ctx context.Context) error {
	defer gracefulShutdown()

	logger.Info(ctx,
		"🚚 truck session started",
		logger.String("manifest", a.di.ManifestPath()),
	)

	if err := a.di.ConsoleHandler(ctx).Run(ctx); err != nil {
		return err
	}

	logger.Info(ctx, "✅ truck session finished")
	return nil
}

//nolint:contextcheck
func gracefulShutdown() {
	ctx, cancel := context.WithTimeout(
		context.Background(), // do not inherit cancellation from ctx
		config.C().App.ShutdownTimeout(),
	)
	defer cancel()

	err := closer.CloseAll(ctx)
	if err != nil {
		logger.Error(ctx, "❌ Error during shutdown", logger.ErrorF(err))
		return
	}
	logger.Info(ctx, "✅ Truck closed")
}
