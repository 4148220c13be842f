// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// s2n-config-inspect loads a TLS endpoint's certificate chain, private key,
// and optional DH parameters exactly the way an endpoint would at startup,
// then reports the resulting configuration: chain entries in order, wire
// sizes, and cipher suite preferences.
//
// Usage:
//
//	s2n-config-inspect --chain chain.pem --key key.pem [--dhparams dh.pem]
//	s2n-config-inspect --config inspect.yaml
//	s2n-config-inspect --chain bundle.p7b --key key.pem --json
package main
