// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemutil

import (
	"bytes"
	"encoding/pem"
	"errors"

	"github.com/hotelzululima/s2n/src/internal/stuffer"
)

var (
	// ErrMalformedPEM indicates a PEM block that starts but never decodes,
	// e.g. an unterminated BEGIN marker or corrupted base64 payload.
	ErrMalformedPEM = errors.New("pemutil: malformed PEM")

	// ErrWrongBlockType indicates a PEM block whose type does not match the
	// material being decoded.
	ErrWrongBlockType = errors.New("pemutil: unexpected PEM block type")

	// ErrNoPEMBlock indicates input with no PEM block at all.
	ErrNoPEMBlock = errors.New("pemutil: no PEM block found")
)

const (
	blockTypeCertificate   = "CERTIFICATE"
	blockTypeRSAPrivateKey = "RSA PRIVATE KEY"
	blockTypePrivateKey    = "PRIVATE KEY"
	blockTypeDHParameters  = "DH PARAMETERS"
)

var beginMarker = []byte("-----BEGIN ")

// nextBlock decodes the next PEM block from in's unread bytes and consumes
// the input up to the end of that block. It reports (nil, nil) when no block
// marker remains, and ErrMalformedPEM when a marker is present but its block
// cannot be decoded, whether the undecodable block is the last one or sits
// in front of a decodable one.
func nextBlock(in *stuffer.Stuffer) (*pem.Block, error) {
	rest := in.Unread()
	block, remainder := pem.Decode(rest)
	if block == nil {
		if bytes.Contains(rest, beginMarker) {
			return nil, ErrMalformedPEM
		}
		return nil, nil
	}

	// pem.Decode scans past undecodable blocks until it finds one that
	// decodes. A second marker in the consumed region means a block was
	// skipped, not decoded.
	consumed := rest[:len(rest)-len(remainder)]
	if bytes.Count(consumed, beginMarker) > 1 {
		return nil, ErrMalformedPEM
	}

	if err := in.Skip(len(consumed)); err != nil {
		return nil, err
	}
	return block, nil
}

// NextCertificateDER decodes the next CERTIFICATE block from in and appends
// its DER bytes to out. It returns false with a nil error when no further
// certificate blocks remain, which is the normal end-of-chain condition.
func NextCertificateDER(in, out *stuffer.Stuffer) (bool, error) {
	block, err := nextBlock(in)
	if err != nil {
		return false, err
	}
	if block == nil {
		return false, nil
	}
	if block.Type != blockTypeCertificate {
		return false, ErrWrongBlockType
	}
	if _, err := out.Write(block.Bytes); err != nil {
		return false, err
	}
	return true, nil
}

// PrivateKeyDER decodes a single private key block from in and appends its
// DER bytes to out. Both PKCS#1 (RSA PRIVATE KEY) and PKCS#8 (PRIVATE KEY)
// wrappers are accepted; telling the two encodings apart is the DER decoder's
// job.
func PrivateKeyDER(in, out *stuffer.Stuffer) error {
	block, err := nextBlock(in)
	if err != nil {
		return err
	}
	if block == nil {
		return ErrNoPEMBlock
	}
	if block.Type != blockTypeRSAPrivateKey && block.Type != blockTypePrivateKey {
		return ErrWrongBlockType
	}
	_, err = out.Write(block.Bytes)
	return err
}

// DHParamsDER decodes a PKCS#3 DH PARAMETERS block from in and appends its
// DER bytes to out.
func DHParamsDER(in, out *stuffer.Stuffer) error {
	block, err := nextBlock(in)
	if err != nil {
		return err
	}
	if block == nil {
		return ErrNoPEMBlock
	}
	if block.Type != blockTypeDHParameters {
		return ErrWrongBlockType
	}
	_, err = out.Write(block.Bytes)
	return err
}
