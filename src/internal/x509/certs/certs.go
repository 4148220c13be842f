// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"encoding/pem"
	"errors"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
)

var (
	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrNoCertificates indicates input that yielded no certificates at all.
	ErrNoCertificates = errors.New("x509certs: no certificates found")
)

// Bundle decodes certificate containers in whatever format operators supply.
// It maintains internal configuration such as the certificate block type.
type Bundle struct {
	certBlockType string
}

// New creates a new Bundle decoder with default settings.
func New() *Bundle {
	return &Bundle{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (b *Bundle) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// Decode parses every certificate in data, which may be a PEM bundle, a raw
// DER concatenation, or a PKCS#7 SignedData container. Order is preserved.
func (b *Bundle) Decode(data []byte) ([]*x509.Certificate, error) {
	if b.IsPEM(data) {
		return b.decodePEM(data)
	}

	if certs, err := x509.ParseCertificates(data); err == nil {
		if len(certs) == 0 {
			return nil, ErrNoCertificates
		}
		return certs, nil
	}

	// Last resort: PKCS#7 via Cloudflare's parser.
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParseCertificate
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificates
	}
	return p.Content.SignedData.Certificates, nil
}

// decodePEM walks concatenated PEM blocks, rejecting non-certificate types.
func (b *Bundle) decodePEM(data []byte) ([]*x509.Certificate, error) {
	var certs []*x509.Certificate

	for len(data) > 0 {
		block, rest := pem.Decode(data)
		if block == nil {
			break
		}
		if block.Type != b.certBlockType {
			return nil, ErrInvalidBlockType
		}

		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, ErrParseCertificate
		}

		certs = append(certs, cert)
		data = rest
	}

	if len(certs) == 0 {
		return nil, ErrNoCertificates
	}
	return certs, nil
}

// EncodePEM encodes a single certificate to PEM.
func (b *Bundle) EncodePEM(cert *x509.Certificate) []byte {
	block := pem.Block{
		Type:  b.certBlockType,
		Bytes: cert.Raw,
	}
	return pem.EncodeToMemory(&block)
}

// NormalizeChain converts any supported container into canonical PEM chain
// text, preserving certificate order. This is the form the configuration
// loader consumes.
func (b *Bundle) NormalizeChain(data []byte) (string, error) {
	certs, err := b.Decode(data)
	if err != nil {
		return "", err
	}

	var out []byte
	for _, cert := range certs {
		out = append(out, b.EncodePEM(cert)...)
	}
	return string(out), nil
}
