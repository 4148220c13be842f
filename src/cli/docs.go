// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli implements the command-line interface for inspecting TLS
// endpoint configuration material. It loads a certificate chain, private
// key, and optional DH parameters the same way an endpoint would at startup,
// then reports what the handshake layer would see: chain entries in
// negotiation order, wire sizes, and cipher suite preferences.
package cli
