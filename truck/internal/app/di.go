package app

import (
	"context"

	"github.com/you-humble/coffee-truck/truck/internal/config"
	"github.com/you-humble/coffee-truck/truck/internal/model"
	repository "github.com/you-humble/coffee-truck/truck/internal/repository/manifest"
	service "github.com/you-humble/coffee-truck/truck/internal/service/cargo"
	"github.com/you-humble/coffee-truck/truck/internal/transport/console"
)

type Runner interface {
	Run(ctx context.Context) error
}

type di struct {
	opts Options

	manifest console.ManifestRepository
	handler  Runner
}

func NewDI(opts Options) *di { return &di{opts: opts} }

func (d *di) ManifestPath() string {
	if d.opts.ManifestPath != nil {
		return *d.opts.ManifestPath
	}
	return config.C().Truck.ManifestPath()
}

func (d *di) MaxVolume() *float64 {
	if d.opts.MaxVolume != nil {
		return d.opts.MaxVolume
	}
	if v, ok := config.C().Truck.MaxVolume(); ok {
		return &v
	}
	return nil
}

func (d *di) QualityRange() *model.QualityRange {
	if d.opts.MinQuality == nil || d.opts.MaxQuality == nil {
		return nil
	}
	return &model.QualityRange{Min: *d.opts.MinQuality, Max: *d.opts.MaxQuality}
}

func (d *di) ManifestRepository(_ context.Context) console.ManifestRepository {
	if d.manifest == nil {
		d.manifest = repository.NewManifestRepository(d.ManifestPath())
	}

	return d.manifest
}

func (d *di) CargoFactory() console.CargoFactory {
	return func(maxVolume float64) (console.CargoService, error) {
		svc, err := service.NewCargoService(maxVolume)
		if err != nil {
			return nil, err
		}
		return svc, nil
	}
}

func (d *di) ConsoleHandler(ctx context.Context) Runner {
	if d.handler == nil {
		d.handler = console.NewConsoleHandler(
			d.opts.In,
			d.opts.Out,
			d.CargoFactory(),
			d.ManifestRepository(ctx),
			console.Options{
				MaxVolume: d.MaxVolume(),
				Quality:   d.QualityRange(),
			},
		)
	}

	return d.handler
}
