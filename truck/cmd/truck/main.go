package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/you-humble/coffee-truck/platform/logger"
	"github.com/you-humble/coffee-truck/truck/internal/app"
)

func main() {
	ctx, quit := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM,
	)
	defer quit()

	if err := app.NewCommand().ExecuteContext(ctx); err != nil {
		logger.Error(ctx, "❌ Truck session error", logger.ErrorF(err))
		quit()
		os.Exit(1)
	}
}
