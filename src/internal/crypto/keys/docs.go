// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package keys decodes DER-encoded private keys and [PKCS#3] Diffie-Hellman
// domain parameters into the structured forms the TLS layer consumes. The
// decoders are strict: anything that is not an RSA key or a well-formed
// parameter sequence is rejected, never coerced.
//
// [PKCS#3]: https://grokipedia.com/page/PKCS
package keys
