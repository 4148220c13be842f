// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs_test

import (
	"encoding/base64"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hotelzululima/s2n/src/internal/testmaterial"
	x509certs "github.com/hotelzululima/s2n/src/internal/x509/certs"
)

func TestDecodePEMBundle(t *testing.T) {
	bundle := x509certs.New()

	certs, err := bundle.Decode([]byte(testmaterial.LeafCertPEM + testmaterial.CACertPEM))
	require.NoError(t, err)
	require.Len(t, certs, 2)

	assert.Equal(t, "localhost", certs[0].Subject.CommonName)
	assert.Equal(t, "s2n Test CA", certs[1].Subject.CommonName)
}

func TestDecodeDER(t *testing.T) {
	bundle := x509certs.New()

	block, _ := pem.Decode([]byte(testmaterial.CACertPEM))
	require.NotNil(t, block)

	certs, err := bundle.Decode(block.Bytes)
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, "s2n Test CA", certs[0].Subject.CommonName)
}

func TestDecodePKCS7(t *testing.T) {
	bundle := x509certs.New()

	der, err := base64.StdEncoding.DecodeString(testmaterial.PKCS7BundleBase64)
	require.NoError(t, err)

	certs, err := bundle.Decode(der)
	require.NoError(t, err)
	require.Len(t, certs, 2)
}

func TestDecodeErrors(t *testing.T) {
	bundle := x509certs.New()

	tests := []struct {
		name  string
		input []byte
		want  error
	}{
		{name: "garbage", input: []byte{0xde, 0xad}, want: x509certs.ErrParseCertificate},
		{name: "key instead of cert", input: []byte(testmaterial.RSAKeyPKCS1PEM), want: x509certs.ErrInvalidBlockType},
		{name: "corrupt PEM payload", input: []byte("-----BEGIN CERTIFICATE-----\nAAAA\n-----END CERTIFICATE-----\n"), want: x509certs.ErrParseCertificate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bundle.Decode(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNormalizeChain(t *testing.T) {
	bundle := x509certs.New()

	der, err := base64.StdEncoding.DecodeString(testmaterial.PKCS7BundleBase64)
	require.NoError(t, err)

	pemChain, err := bundle.NormalizeChain(der)
	require.NoError(t, err)

	// Normalized text must decode back to the same number of certificates.
	certs, err := bundle.Decode([]byte(pemChain))
	require.NoError(t, err)
	assert.Len(t, certs, 2)
}

func TestNormalizeChainIsIdempotent(t *testing.T) {
	bundle := x509certs.New()

	first, err := bundle.NormalizeChain([]byte(testmaterial.LeafCertPEM + testmaterial.CACertPEM))
	require.NoError(t, err)

	second, err := bundle.NormalizeChain([]byte(first))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
