package main

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/parking-atlas/pkg/config"
	"github.com/de-tools/parking-atlas/pkg/runtime/bootstrap"
	"github.com/de-tools/parking-atlas/pkg/runtime/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Getenv("PARKING_ATLAS_CONFIG"))
	if err != nil {
		return err
	}

	// Reports go to stdout, logs to stderr.
	logger, err := bootstrap.NewLogger(os.Stderr, cfg.Log.Level)
	if err != nil {
		return err
	}
	ctx := logger.WithContext(context.Background())

	components, err := bootstrap.New(ctx, cfg)
	if err != nil {
		return err
	}

	cli := terminal.NewCLI(terminal.Options{
		Reporter: components.Service,
		Money:    components.Money,
		Output:   os.Stdout,
	})

	return cli.Execute(ctx)
}
