package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/coffee-truck/truck/internal/config/env"
)

var cfg *config

type config struct {
	Logger Logger
	Truck  Truck
	App    App
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	truckCfg, err := envconfig.NewTruckConfig()
	if err != nil {
		return fmt.Errorf("%s Truck: %w", op, err)
	}

	appCfg, err := envconfig.NewAppConfig()
	if err != nil {
		return fmt.Errorf("%s App: %w", op, err)
	}

	cfg = &config{
		Logger: loggerCfg,
		Truck:  truckCfg,
		App:    appCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
