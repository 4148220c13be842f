// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package ciphers defines the supported TLS cipher suite identifiers and the
// ordered preference table configurations negotiate from. Selection against a
// peer's offered list happens in the handshake layer; this package only owns
// the static priority data.
package ciphers
