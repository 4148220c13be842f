// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package keys

import (
	"errors"
	"math/big"

	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// ErrInvalidPKCS3 indicates DER bytes that do not form a PKCS#3
// DHParameter sequence.
var ErrInvalidPKCS3 = errors.New("keys: invalid PKCS#3 DH parameters")

// DHParams holds decoded Diffie-Hellman domain parameters.
//
//	DHParameter ::= SEQUENCE {
//	  prime               INTEGER, -- p
//	  base                INTEGER, -- g
//	  privateValueLength  INTEGER OPTIONAL
//	}
type DHParams struct {
	P *big.Int
	G *big.Int

	// PrivateValueLength is zero when the optional field is absent.
	PrivateValueLength int
}

// PKCS3ToDHParams populates holder in place from PKCS#3 DER bytes. The
// in-place contract lets a caller allocate the holder as part of a larger
// owned structure before decoding.
func PKCS3ToDHParams(holder *DHParams, der []byte) error {
	if len(der) == 0 {
		return ErrEmptyDER
	}

	var (
		seq  cryptobyte.String
		p, g *big.Int = new(big.Int), new(big.Int)
	)
	input := cryptobyte.String(der)
	if !input.ReadASN1(&seq, cryptobyte_asn1.SEQUENCE) || !input.Empty() {
		return ErrInvalidPKCS3
	}
	if !seq.ReadASN1Integer(p) || !seq.ReadASN1Integer(g) {
		return ErrInvalidPKCS3
	}

	privLen := 0
	if !seq.Empty() {
		if !seq.ReadASN1Integer(&privLen) || !seq.Empty() {
			return ErrInvalidPKCS3
		}
	}

	if p.Sign() <= 0 || g.Sign() <= 0 {
		return ErrInvalidPKCS3
	}

	holder.P = p
	holder.G = g
	holder.PrivateValueLength = privLen
	return nil
}

// PrimeBits returns the size of the prime modulus in bits.
func (d *DHParams) PrimeBits() int {
	if d.P == nil {
		return 0
	}
	return d.P.BitLen()
}
