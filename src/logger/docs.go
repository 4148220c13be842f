// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the logging interface used by the CLI surface.
// The configuration core itself never logs; only the command-line tooling
// around it does, either as plain human-readable lines or as structured
// JSON for machine consumption.
package logger
