// Package cmd hosts the shared process lifecycle for bot binaries.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/benuhq/benubot/core/buildinfo"
	"github.com/benuhq/benubot/core/logger"
)

// AppFunc runs the application until the context is cancelled.
type AppFunc func(ctx context.Context, configPath string) error

// Run parses the standard flags, installs signal handling, executes the
// app, and flushes logs on the way out. It returns the process exit code.
func Run(appName string, app AppFunc) int {
	configPath := flag.String("config", "config.yaml", "path to YAML config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s (commit %s, built %s)\n", appName, buildinfo.Version, buildinfo.Commit, buildinfo.Date)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := app(ctx, *configPath)

	if flushErr := logger.Shutdown(); flushErr != nil {
		fmt.Fprintf(os.Stderr, "%s: log flush: %v\n", appName, flushErr)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}

// LogStartup emits the standard startup line with build metadata.
func LogStartup(ctx context.Context, appName string) {
	logger.Info(ctx, "app", "app.starting",
		slog.String("app", appName),
		slog.String("version", buildinfo.Version),
		slog.String("commit", buildinfo.Commit),
	)
}
