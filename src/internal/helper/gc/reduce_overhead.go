// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer defines the interface for a reusable byte buffer.
// It abstracts the [bytebufferpool.ByteBuffer] type to avoid direct dependencies.
type Buffer interface {
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	Bytes() []byte
	String() string
	Len() int
	Grow(n int)
	Reset()
	ReadFrom(r io.Reader) (int64, error)
}

// Pool defines the interface for buffer pooling.
// It abstracts the [bytebufferpool.Pool] type to avoid direct dependencies.
//
// Pool implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// buffer wraps [bytebufferpool.ByteBuffer] to add capacity reservation, which
// the pooled type does not offer on its own.
type buffer struct{ *bytebufferpool.ByteBuffer }

// Grow reserves room for at least n more bytes without changing the buffer's
// length. Writes up to the reserved capacity will not reallocate.
func (b buffer) Grow(n int) {
	if n <= cap(b.B)-len(b.B) {
		return
	}
	grown := make([]byte, len(b.B), len(b.B)+n)
	copy(grown, b.B)
	b.B = grown
}

// pool wraps [bytebufferpool.Pool] to implement Pool interface.
type pool struct{ p *bytebufferpool.Pool }

// Get returns a buffer from the pool.
func (p *pool) Get() Buffer { return buffer{p.p.Get()} }

// Put returns a buffer to the pool.
func (p *pool) Put(b Buffer) {
	if buf, ok := b.(buffer); ok {
		p.p.Put(buf.ByteBuffer)
	}
}

// Default is the default buffer pool used for staging decoded PEM and DER
// bytes during configuration loads.
//
// Example usage:
//
//	// Get a buffer from the pool
//	buf := gc.Default.Get()
//
//	defer func() {
//		buf.Reset()         // Reset the buffer to prevent data leaks
//		gc.Default.Put(buf) // Return the buffer to the pool for reuse
//	}()
//
//	// Stage decoded bytes into the buffer
//	buf.Write(block.Bytes)
//
// Certificate chains and private keys pass through these buffers on every
// endpoint setup, so pooling keeps repeated loads from churning the heap.
var Default Pool = &pool{p: &bytebufferpool.Pool{}}
