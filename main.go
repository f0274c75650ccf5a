package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/km-arc/go-board/app"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

// run boots and serves the application until SIGINT or SIGTERM and returns
// the process exit code. Deferred cleanup runs before main exits.
func run() int {
	application, err := app.New() // loads .env automatically
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap: %v\n", err)
		return 1
	}
	defer application.Logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		application.Logger.Error("application stopped", zap.Error(err))
		return 1
	}
	return 0
}
