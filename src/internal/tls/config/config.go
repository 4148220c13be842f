// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsconfig

import (
	"errors"

	"github.com/hotelzululima/s2n/src/internal/crypto/keys"
	"github.com/hotelzululima/s2n/src/internal/tls/ciphers"
)

var (
	// ErrImmutableConfig indicates a mutation or free against the shared
	// process-wide default configuration.
	ErrImmutableConfig = errors.New("tlsconfig: default configuration is immutable")

	// ErrChainAlreadyLoaded indicates a second certificate chain load against
	// a configuration that already owns a pair.
	ErrChainAlreadyLoaded = errors.New("tlsconfig: certificate chain and key already loaded")

	// ErrDHParamsAlreadyLoaded indicates a second DH parameter load.
	ErrDHParamsAlreadyLoaded = errors.New("tlsconfig: DH parameters already loaded")

	// ErrEmptyCertificateChain indicates a chain PEM bundle that contained no
	// certificates at all.
	ErrEmptyCertificateChain = errors.New("tlsconfig: no certificates found in PEM")

	// ErrInvalidPrivateKey indicates private key material that failed to
	// decode.
	ErrInvalidPrivateKey = errors.New("tlsconfig: invalid private key")

	// ErrInvalidDHParams indicates DH parameter material that failed to
	// decode.
	ErrInvalidDHParams = errors.New("tlsconfig: invalid DH parameters")
)

// Config aggregates everything an endpoint owns before handshakes start. A
// Config is built once, by at most one AddCertChainAndKey call and at most
// one AddDHParams call, then treated as read-only shared state. Construction
// itself is single-threaded; only the finished value may be shared.
type Config struct {
	preferences *ciphers.Preferences
	pair        *ChainAndKey
	dhParams    *keys.DHParams

	immutable bool
	freed     bool
}

// defaultConfig is the shared read-only baseline. It references the static
// preference table directly because nothing is allowed to mutate it.
var defaultConfig = &Config{
	preferences: ciphers.Default(),
	immutable:   true,
}

// New creates an empty configuration whose cipher preferences are an
// independent copy of the process-wide default table. The certificate pair
// and DH parameters are absent until loaded.
func New() *Config {
	return &Config{preferences: ciphers.Default().Clone()}
}

// Default returns the process-wide read-only configuration for callers that
// need baseline cipher preferences without allocating. It must never be
// mutated or freed; both are rejected.
func Default() *Config {
	return defaultConfig
}

// CipherPreferences returns the configuration's owned preference table.
func (c *Config) CipherPreferences() *ciphers.Preferences { return c.preferences }

// ChainAndKey returns the loaded certificate chain and private key pair, or
// nil when none has been loaded.
func (c *Config) ChainAndKey() *ChainAndKey { return c.pair }

// DHParams returns the loaded DH parameters, or nil when none have been
// loaded.
func (c *Config) DHParams() *keys.DHParams { return c.dhParams }

// Free releases the configuration and, transitively, every owned child:
// preference copy, certificate blobs, private key, and DH parameters. Key
// material is zeroized, not just dropped. Safe to call in any state the load
// operations can produce; a second Free is a no-op. Freeing the shared
// default configuration is rejected.
func (c *Config) Free() error {
	if c.immutable {
		return ErrImmutableConfig
	}
	if c.freed {
		return nil
	}

	if c.pair != nil {
		c.pair.free()
		c.pair = nil
	}
	if c.dhParams != nil {
		*c.dhParams = keys.DHParams{}
		c.dhParams = nil
	}
	c.preferences = nil
	c.freed = true
	return nil
}
