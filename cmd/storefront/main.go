package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/app"
	"github.com/niksmo/storefront/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run serves until a stop signal arrives or the HTTP server exits on its
// own, then drains in-flight requests for at most closeTimeout.
func run() error {
	sigCtx, stop := sigctx.NotifyContext()
	defer stop()

	cfg := config.Load()
	cfg.Print()

	storefront := app.New(sigCtx, cfg)
	storefront.Run(stop)

	<-sigCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	if err := storefront.Close(ctx); err != nil {
		return fmt.Errorf("storefront: %w", err)
	}
	return nil
}
