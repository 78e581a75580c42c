package main

import (
	"context"
	"os"

	"finnotify/internal/shared"

	"github.com/urfave/cli/v3"
)

// configFile is the default configuration filename, looked up in the
// working directory.
const configFile = "finnotify.toml"

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat(configFile); err == nil {
		if loadedConfig, err := shared.LoadConfig(configFile); err == nil {
			config = loadedConfig
		}
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "finnotify",
		Usage:    "Daily personal finance notifications, scheduled through launchd",
		Version:  "1.0.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
