// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelzululima/s2n/src/logger"
)

func TestCLILogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&buf)

	log.Printf("loaded %d certificates", 3)
	log.Println("done")

	out := buf.String()
	assert.Contains(t, out, "loaded 3 certificates")
	assert.Contains(t, out, "done")
	assert.NotContains(t, out, "level", "CLI output must stay human readable")
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewJSONLogger(&buf)

	log.Printf("chain size %d", 1484)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "chain size 1484", entry["message"])
}

func TestJSONLoggerNilWriter(t *testing.T) {
	log := logger.NewJSONLogger(nil)
	log.Println("discarded")

	log.SetOutput(nil)
	log.Println("still discarded")
}

func TestJSONLoggerConcurrent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewJSONLogger(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				log.Println("entry")
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 400)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
	}
}
