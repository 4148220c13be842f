// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package ciphers

import "golang.org/x/crypto/cryptobyte"

// Cipher suite identifiers from the TLS registry, 2-byte wire codes.
const (
	TLSRSAWithRC4128MD5          uint16 = 0x0004
	TLSRSAWithRC4128SHA          uint16 = 0x0005
	TLSRSAWith3DESEDECBCSHA      uint16 = 0x000A
	TLSDHERSAWith3DESEDECBCSHA   uint16 = 0x0016
	TLSRSAWithAES128CBCSHA       uint16 = 0x002F
	TLSDHERSAWithAES128CBCSHA    uint16 = 0x0033
	TLSRSAWithAES128CBCSHA256    uint16 = 0x003C
	TLSDHERSAWithAES128CBCSHA256 uint16 = 0x0067
)

// Preferences is an ordered, immutable cipher suite list. Position is
// negotiation priority, most preferred first.
type Preferences struct {
	suites []uint16
}

// preferences20140601 is the supported preference set as of 2014-06-01:
// ephemeral DH suites first, strongest digest first within each key exchange.
var preferences20140601 = Preferences{suites: []uint16{
	TLSDHERSAWithAES128CBCSHA256,
	TLSDHERSAWithAES128CBCSHA,
	TLSDHERSAWith3DESEDECBCSHA,
	TLSRSAWithAES128CBCSHA256,
	TLSRSAWithAES128CBCSHA,
	TLSRSAWith3DESEDECBCSHA,
	TLSRSAWithRC4128SHA,
	TLSRSAWithRC4128MD5,
}}

// Default returns the process-wide default preference table. The returned
// value is shared and must not be mutated; configurations take their own
// copy via Clone.
func Default() *Preferences {
	return &preferences20140601
}

// Clone returns an independent copy with identical contents, so that later
// per-configuration edits cannot corrupt the shared default.
func (p *Preferences) Clone() *Preferences {
	suites := make([]uint16, len(p.suites))
	copy(suites, p.suites)
	return &Preferences{suites: suites}
}

// Count returns the number of suites in the table.
func (p *Preferences) Count() int { return len(p.suites) }

// Suites returns the suites in preference order. The returned slice is a
// copy; callers may keep it.
func (p *Preferences) Suites() []uint16 {
	out := make([]uint16, len(p.suites))
	copy(out, p.suites)
	return out
}

// Contains reports whether suite is part of the table.
func (p *Preferences) Contains(suite uint16) bool {
	for _, s := range p.suites {
		if s == suite {
			return true
		}
	}
	return false
}

// Wire renders the table in handshake wire form, two bytes per suite in
// preference order.
func (p *Preferences) Wire() []byte {
	var b cryptobyte.Builder
	for _, s := range p.suites {
		b.AddUint16(s)
	}
	// Building from fixed-width fields cannot fail.
	out, _ := b.Bytes()
	return out
}
