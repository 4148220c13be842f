// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pemutil canonicalizes [PEM]-wrapped certificate, private key, and
// Diffie-Hellman parameter material into DER bytes. All functions consume from
// an input [stuffer.Stuffer] and append decoded bytes to an output one, so the
// configuration loaders can walk a multi-certificate bundle one block at a time.
//
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package pemutil
