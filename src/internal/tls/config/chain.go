// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsconfig

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/cryptobyte"

	"github.com/hotelzululima/s2n/src/internal/crypto/keys"
	"github.com/hotelzululima/s2n/src/internal/crypto/random"
	"github.com/hotelzululima/s2n/src/internal/pemutil"
	"github.com/hotelzululima/s2n/src/internal/stuffer"
)

// certLengthPrefixSize is the per-certificate length field a chain entry
// occupies in the handshake wire format.
const certLengthPrefixSize = 3

// chainStagingCapacity is the initial staging buffer size for chain decoding.
const chainStagingCapacity = 2048

// ChainAndKey owns a private key and the certificate chain it belongs to.
// Certificates are DER blobs in the order they appeared in the input PEM:
// leaf first, intermediates following. chainSize is kept equal to the sum of
// each certificate's DER length plus its wire length prefix.
type ChainAndKey struct {
	key       *keys.RSAPrivateKey
	chain     [][]byte
	chainSize uint32
}

// appendCertificate takes ownership of der as the next chain entry and keeps
// the size accounting in step. No entry is ever added without it.
func (p *ChainAndKey) appendCertificate(der []byte) {
	p.chain = append(p.chain, der)
	p.chainSize += uint32(len(der) + certLengthPrefixSize)
}

// PrivateKey returns the pair's private key.
func (p *ChainAndKey) PrivateKey() *keys.RSAPrivateKey { return p.key }

// CertificateCount returns the number of chain entries.
func (p *ChainAndKey) CertificateCount() int { return len(p.chain) }

// Certificate returns the DER bytes of the i-th chain entry, leaf first. The
// returned slice is owned by the pair and must not be mutated.
func (p *ChainAndKey) Certificate(i int) []byte { return p.chain[i] }

// ChainSize returns the wire-encoded size of the whole chain, including the
// per-certificate length prefixes.
func (p *ChainAndKey) ChainSize() uint32 { return p.chainSize }

// WireChain encodes the chain in handshake wire form: each certificate's DER
// bytes behind a 3-byte length prefix, in chain order. The result is always
// exactly ChainSize bytes.
func (p *ChainAndKey) WireChain() []byte {
	var b cryptobyte.Builder
	for _, der := range p.chain {
		b.AddUint24LengthPrefixed(func(c *cryptobyte.Builder) {
			c.AddBytes(der)
		})
	}
	out, _ := b.Bytes()
	return out
}

// free zeroizes the key and every certificate blob, then drops them.
func (p *ChainAndKey) free() {
	if p.key != nil {
		p.key.Zeroize()
		p.key = nil
	}
	for _, der := range p.chain {
		for i := range der {
			der[i] = 0
		}
	}
	p.chain = nil
	p.chainSize = 0
}

// AddCertChainAndKey loads a PEM certificate chain and its PEM private key
// into the configuration as one atomic operation. The private key decodes
// first, then the chain, one certificate per PEM block in file order. The
// decoded pair is assembled locally and attached only once both parts
// succeeded; on any failure the configuration is left exactly as it was.
//
// A configuration holds at most one pair; a second load is rejected with
// ErrChainAlreadyLoaded rather than silently replacing the first.
//
// On first success the process-wide secure random source is pinned via
// [random.InstallProcessReader]; repeated installs are no-ops.
func (c *Config) AddCertChainAndKey(certChainPEM, privateKeyPEM string) error {
	if c.immutable {
		return ErrImmutableConfig
	}
	if c.pair != nil {
		return ErrChainAlreadyLoaded
	}

	key, err := DecodePrivateKey(privateKeyPEM)
	if err != nil {
		return err
	}

	pair := &ChainAndKey{key: key}
	if err := decodeChain(pair, certChainPEM); err != nil {
		pair.free()
		return err
	}

	c.pair = pair

	// Pin the process RNG so every later draw of randomness goes through the
	// source this implementation chose, not whatever a linked library set up.
	random.InstallProcessReader(rand.Reader)
	return nil
}

// DecodePrivateKey decodes a single PEM private key into the representation
// the TLS layer uses. Every decode failure is reported as
// ErrInvalidPrivateKey with the cause attached.
func DecodePrivateKey(privateKeyPEM string) (*keys.RSAPrivateKey, error) {
	in := stuffer.FromString(privateKeyPEM)
	out := stuffer.Growable(len(privateKeyPEM))
	defer out.Release()

	if err := pemutil.PrivateKeyDER(in, out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}

	der := out.ReadAll()
	if len(der) == 0 {
		return nil, fmt.Errorf("%w: empty key block", ErrInvalidPrivateKey)
	}

	key, err := keys.DERToRSAPrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPrivateKey, err)
	}
	return key, nil
}

// decodeChain walks certChainPEM one certificate block at a time, appending
// each decoded certificate to pair in PEM order. Running out of blocks after
// at least one certificate is the normal termination condition; running out
// immediately is an empty chain. PEM staging failures propagate unchanged.
func decodeChain(pair *ChainAndKey, certChainPEM string) error {
	in := stuffer.FromString(certChainPEM)
	out := stuffer.Growable(chainStagingCapacity)
	defer out.Release()

	for {
		found, err := pemutil.NextCertificateDER(in, out)
		if err != nil {
			return err
		}
		if !found {
			if pair.CertificateCount() == 0 {
				return ErrEmptyCertificateChain
			}
			return nil
		}

		staged := out.ReadAll()
		der := make([]byte, len(staged))
		copy(der, staged)
		out.Reset()

		pair.appendCertificate(der)
	}
}
