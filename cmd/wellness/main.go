// Package main is the entry point for the wellness CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"wellness/internal/cli"
	"wellness/internal/commands"
)

func main() {
	// Cancel on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, cli.DefaultSourceFactory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
