// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package random

import (
	"bytes"
	"crypto/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedReader always yields the same byte, which makes override installation
// observable in output.
type fixedReader struct{ b byte }

func (f fixedReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = f.b
	}
	return len(p), nil
}

func TestDefaultIsCryptoRand(t *testing.T) {
	reset()
	assert.False(t, Installed())
	assert.Equal(t, rand.Reader, Reader())
}

func TestFirstInstallWins(t *testing.T) {
	reset()
	t.Cleanup(reset)

	InstallProcessReader(fixedReader{b: 0xAA})
	InstallProcessReader(fixedReader{b: 0xBB})

	out, err := Bytes(8)
	require.NoError(t, err)
	assert.Equal(t, bytes.Repeat([]byte{0xAA}, 8), out)
}

func TestNilInstallIgnored(t *testing.T) {
	reset()
	t.Cleanup(reset)

	InstallProcessReader(nil)
	assert.False(t, Installed())
}

func TestConcurrentInstallIsSafe(t *testing.T) {
	reset()
	t.Cleanup(reset)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(b byte) {
			defer wg.Done()
			InstallProcessReader(fixedReader{b: b})
		}(byte(i))
	}
	wg.Wait()

	require.True(t, Installed())

	// Exactly one override won; all bytes come from the same source.
	out, err := Bytes(16)
	require.NoError(t, err)
	for _, b := range out[1:] {
		assert.Equal(t, out[0], b)
	}
}
