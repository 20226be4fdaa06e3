package config

import "time"

type Logger interface {
	Level() string
	AsJSON() bool
}

type Truck interface {
	// MaxVolume reports the configured capacity and whether one was set.
	MaxVolume() (float64, bool)
	ManifestPath() string
}

type App interface {
	ShutdownTimeout() time.Duration
}
