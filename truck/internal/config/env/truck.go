package envconfig

import "github.com/caarlos0/env/v11"

type truckEnv struct {
	MaxVolume    *float64 `env:"TRUCK_MAX_VOLUME"`
	ManifestPath string   `env:"TRUCK_MANIFEST_PATH"`
}

type truck struct {
	raw truckEnv
}

func NewTruckConfig() (*truck, error) {
	var raw truckEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &truck{raw: raw}, nil
}

func (cfg *truck) MaxVolume() (float64, bool) {
	if cfg.raw.MaxVolume == nil {
		return 0, false
	}
	return *cfg.raw.MaxVolume, true
}

func (cfg *truck) ManifestPath() string { return cfg.raw.ManifestPath }
