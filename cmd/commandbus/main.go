// Package main contains the entrypoint for the commandbus calculator CLI.
package main

import (
	"context"
	"fmt"
	"os"
)

func run() error {
	config, err := ParseConfig()
	if err != nil {
		return fmt.Errorf("commandbus.main: failed to parse config, %w", err)
	}

	logger, err := config.NewLogger()
	if err != nil {
		return fmt.Errorf("commandbus.main: failed to initialize logger, %w", err)
	}

	//nolint:errcheck // No need for this error to come up if it happens.
	defer logger.Sync()

	root := newRootCommand(&app{
		config: config,
		logger: logger,
	})

	return root.ExecuteContext(context.Background())
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
