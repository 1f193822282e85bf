package main

import (
	"context"
	"os"
	"os/signal"
)

// version is overwritten at build time with -ldflags "-X main.version=...".
var version = "v0.0.0-dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// trap Ctrl+C and call cancel on the context
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer func() {
		signal.Stop(c)
	}()
	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
	}()

	Execute(ctx, version)
}
