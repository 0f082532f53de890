package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/marcodamonte/concepts/cmd"
)

func main() {
	slog.SetDefault(cmd.Logger())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		slog.Error("failed to execute command", slog.Any("error", err))
		os.Exit(1)
	}
}
