// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package tlsconfig builds and owns the data a TLS endpoint needs before a
// handshake begins: the ordered cipher suite preferences, the certificate
// chain and private key, and optional Diffie-Hellman parameters. It provides
// capabilities to:
//   - Create and destroy configurations with fully owned children.
//   - Load a PEM certificate chain and private key as one atomic operation.
//   - Load PKCS#3 DH parameters independently of the chain.
//
// Loads are all-or-nothing: decoded material is assembled locally and only
// attached to the configuration once every byte parsed, so a failed load
// never leaves partial state observable. A fully constructed configuration
// is meant to be frozen and then shared read-only across handshakes; no
// load operation may run after sharing begins.
package tlsconfig
