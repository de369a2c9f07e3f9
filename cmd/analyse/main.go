package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pageview-analytics/internal/app"
	"pageview-analytics/internal/shared/configs"
	"pageview-analytics/internal/shared/svcerrors"
)

const usageHeader = "Usage: analyse [flags] [export.csv]\n\nAggregates an analytics page export into a URL tree.\n\n"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Load configuration
	cfg, err := configs.LoadConfig(args)
	if err != nil {
		if errors.Is(err, configs.ErrHelp) {
			fmt.Fprint(os.Stdout, usageHeader+configs.Usage())
			return 0
		}
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		fmt.Fprint(os.Stderr, "\n"+usageHeader+configs.Usage())
		return svcerrors.ExitCodeInvalidInput
	}

	// Initialize application
	application, err := app.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize app: %v\n", err)
		return exitCode(err)
	}
	defer application.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "analyse: %v\n", err)
		return exitCode(err)
	}
	return 0
}

func exitCode(err error) int {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.ExitCode
	}
	return svcerrors.ExitCodeInternal
}
