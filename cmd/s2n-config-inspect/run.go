// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hotelzululima/s2n/src/cli"
	"github.com/hotelzululima/s2n/src/logger"
	"github.com/hotelzululima/s2n/src/version"
)

func main() {
	// Create CLI logger
	log := logger.NewCLILogger()

	// Failures follow the requested output mode: JSON lines when --json is set.
	diag := cli.DiagnosticLogger(os.Args[1:])

	// Create a context cancelled on termination signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, version.Version, log); err != nil {
		diag.Printf("Error: %v", err)
		os.Exit(1)
	}
}
