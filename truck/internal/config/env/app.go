package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type appEnv struct {
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

type app struct {
	raw appEnv
}

func NewAppConfig() (*app, error) {
	var raw appEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &app{raw: raw}, nil
}

func (cfg *app) ShutdownTimeout() time.Duration { return cfg.raw.ShutdownTimeout }
