package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	apperrors "github.com/ByLCY/onepage/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		printError("%s", apperrors.UserMessage(err))
		os.Exit(1)
	}
}
