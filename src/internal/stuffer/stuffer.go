// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package stuffer

import (
	"errors"

	"github.com/hotelzululima/s2n/src/internal/helper/gc"
)

var (
	// ErrOutOfData indicates a read past the end of the staged bytes.
	ErrOutOfData = errors.New("stuffer: out of data")

	// ErrReadOnly indicates a write against a read-only view.
	ErrReadOnly = errors.New("stuffer: buffer is read-only")
)

// Stuffer stages bytes during PEM/DER conversion. It is either a read-only
// view over existing text or a growable scratch buffer backed by the shared
// [gc] pool. A read cursor separates consumed bytes from unread ones.
//
// Stuffers are not safe for concurrent use; configuration construction is
// synchronous single-threaded setup work.
type Stuffer struct {
	view    []byte    // read-only storage, nil when growable
	buf     gc.Buffer // pooled storage, nil for read-only views
	readPos int
}

// FromString creates a read-only Stuffer over the bytes of s. The text is not
// copied again after the initial conversion; writes are rejected.
func FromString(s string) *Stuffer {
	return &Stuffer{view: []byte(s)}
}

// FromBytes creates a read-only Stuffer over p. The caller must not mutate p
// while the Stuffer is in use.
func FromBytes(p []byte) *Stuffer {
	return &Stuffer{view: p}
}

// Growable creates a writable Stuffer with pooled storage, pre-sized to hold
// capacity bytes; the buffer grows past the hint as needed. Release must be
// called to return the storage to the pool.
func Growable(capacity int) *Stuffer {
	buf := gc.Default.Get()
	if capacity > 0 {
		buf.Grow(capacity)
	}
	return &Stuffer{buf: buf}
}

// Release returns pooled storage and invalidates the Stuffer. It is a no-op
// for read-only views and for Stuffers already released.
func (s *Stuffer) Release() {
	if s.buf == nil {
		return
	}
	s.buf.Reset()
	gc.Default.Put(s.buf)
	s.buf = nil
	s.readPos = 0
}

// all returns the full staged contents, consumed and unread.
func (s *Stuffer) all() []byte {
	if s.buf != nil {
		return s.buf.Bytes()
	}
	return s.view
}

// DataAvailable reports the number of unread bytes.
func (s *Stuffer) DataAvailable() int {
	return len(s.all()) - s.readPos
}

// Unread returns the unread portion of the staged bytes without consuming it.
func (s *Stuffer) Unread() []byte {
	return s.all()[s.readPos:]
}

// Skip consumes n bytes without returning them.
func (s *Stuffer) Skip(n int) error {
	if n < 0 || n > s.DataAvailable() {
		return ErrOutOfData
	}
	s.readPos += n
	return nil
}

// ReadExact consumes exactly n bytes from the current read position. The
// returned slice aliases the staged storage and is only valid until the
// Stuffer is released or reset.
func (s *Stuffer) ReadExact(n int) ([]byte, error) {
	if n < 0 || n > s.DataAvailable() {
		return nil, ErrOutOfData
	}
	out := s.all()[s.readPos : s.readPos+n]
	s.readPos += n
	return out, nil
}

// ReadAll consumes every remaining unread byte.
func (s *Stuffer) ReadAll() []byte {
	out := s.Unread()
	s.readPos = len(s.all())
	return out
}

// Write appends p to a growable Stuffer.
func (s *Stuffer) Write(p []byte) (int, error) {
	if s.buf == nil {
		return 0, ErrReadOnly
	}
	return s.buf.Write(p)
}

// WriteString appends str to a growable Stuffer.
func (s *Stuffer) WriteString(str string) (int, error) {
	if s.buf == nil {
		return 0, ErrReadOnly
	}
	return s.buf.WriteString(str)
}

// Reset discards all staged bytes and rewinds the read cursor. Read-only
// views only rewind.
func (s *Stuffer) Reset() {
	if s.buf != nil {
		s.buf.Reset()
	}
	s.readPos = 0
}
