// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package keys

import (
	"crypto/rsa"
	"crypto/x509"
	"errors"
	"fmt"
)

var (
	// ErrEmptyDER indicates that no DER bytes were staged for decoding.
	ErrEmptyDER = errors.New("keys: empty DER input")

	// ErrNotRSAKey indicates a PKCS#8 envelope wrapping a non-RSA key.
	ErrNotRSAKey = errors.New("keys: private key is not RSA")
)

// RSAPrivateKey is the structured private key representation owned by a
// certificate-chain-and-key pair. The underlying key is reachable for the
// handshake layer; everything else treats it as opaque.
type RSAPrivateKey struct {
	key *rsa.PrivateKey
}

// DERToRSAPrivateKey decodes der into an RSA private key. PKCS#1 encoding is
// tried first, matching the material endpoints usually carry, with PKCS#8 as
// the fallback.
func DERToRSAPrivateKey(der []byte) (*RSAPrivateKey, error) {
	if len(der) == 0 {
		return nil, ErrEmptyDER
	}

	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return &RSAPrivateKey{key: key}, nil
	}

	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("keys: decode private key: %w", err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, ErrNotRSAKey
	}
	return &RSAPrivateKey{key: key}, nil
}

// Key returns the decoded RSA key.
func (k *RSAPrivateKey) Key() *rsa.PrivateKey { return k.key }

// Size returns the modulus size in bytes.
func (k *RSAPrivateKey) Size() int {
	if k.key == nil {
		return 0
	}
	return k.key.Size()
}

// Zeroize wipes the secret components and drops the key reference. The key
// is unusable afterwards.
func (k *RSAPrivateKey) Zeroize() {
	if k.key == nil {
		return
	}
	k.key.D.SetInt64(0)
	for _, p := range k.key.Primes {
		p.SetInt64(0)
	}
	k.key.Precomputed = rsa.PrecomputedValues{}
	k.key = nil
}
