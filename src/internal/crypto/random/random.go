// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package random owns the process-wide secure random source the TLS layer
// draws from. The source is installed explicitly, at most once per process;
// later installs are no-ops. Until something is installed, [crypto/rand]
// is used. Keeping the override an explicit, inspectable value rather than a
// hidden side effect makes the swap visible in tests.
package random

import (
	"crypto/rand"
	"io"
	"sync"
)

var (
	mu        sync.Mutex
	installed io.Reader
)

// InstallProcessReader installs r as the process-wide secure random source.
// The first install wins; every later call, including concurrent ones, is a
// no-op. A nil r is ignored.
func InstallProcessReader(r io.Reader) {
	if r == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if installed == nil {
		installed = r
	}
}

// Installed reports whether an override has been installed.
func Installed() bool {
	mu.Lock()
	defer mu.Unlock()
	return installed != nil
}

// Reader returns the process random source: the installed override, or
// [crypto/rand.Reader] when none has been installed.
func Reader() io.Reader {
	mu.Lock()
	defer mu.Unlock()
	if installed != nil {
		return installed
	}
	return rand.Reader
}

// Bytes fills a fresh n-byte slice from the process random source.
func Bytes(n int) ([]byte, error) {
	out := make([]byte, n)
	if _, err := io.ReadFull(Reader(), out); err != nil {
		return nil, err
	}
	return out, nil
}

// reset clears the override. Test hook only.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	installed = nil
}
