// Command ls-skyplan resolves observation targets into sky positions
// from the terminal.
package main

import (
	"context"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	Execute(ctx)
}
