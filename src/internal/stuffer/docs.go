// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package stuffer provides the staging buffers the configuration loaders use
// to hold PEM text and decoded DER bytes during conversion. A Stuffer is either
// a read-only view over caller-supplied text or a growable, pooled scratch
// buffer; both track a read cursor so decoders can consume input incrementally.
package stuffer
