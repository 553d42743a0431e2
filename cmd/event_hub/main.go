package main

import (
	"context"
	"fmt"
	"os"

	"github.com/stpnv0/EventHub/internal/app"
	"github.com/stpnv0/EventHub/internal/config"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "event_hub: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}

	return application.Run(ctx)
}
