// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs normalizes operator-supplied certificate bundles into the
// canonical PEM chain text the configuration loader consumes. It accepts PEM
// bundles, raw DER concatenations, and [PKCS7] SignedData containers, so an
// exported .p7b can be fed to an endpoint without manual conversion first.
//
// [PKCS7]: https://grokipedia.com/page/PKCS_7
package x509certs
