// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsconfig

import (
	"fmt"

	"github.com/hotelzululima/s2n/src/internal/crypto/keys"
	"github.com/hotelzululima/s2n/src/internal/pemutil"
	"github.com/hotelzululima/s2n/src/internal/stuffer"
)

// AddDHParams loads PKCS#3 Diffie-Hellman parameters from PEM into the
// configuration. Independent of the certificate pair: it may be called
// whether or not a chain has been loaded, and a failure here never touches
// one. A second load is rejected with ErrDHParamsAlreadyLoaded.
func (c *Config) AddDHParams(dhParamsPEM string) error {
	if c.immutable {
		return ErrImmutableConfig
	}
	if c.dhParams != nil {
		return ErrDHParamsAlreadyLoaded
	}

	in := stuffer.FromString(dhParamsPEM)
	out := stuffer.Growable(len(dhParamsPEM))
	defer out.Release()

	if err := pemutil.DHParamsDER(in, out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDHParams, err)
	}

	der := out.ReadAll()
	if len(der) == 0 {
		return fmt.Errorf("%w: empty parameter block", ErrInvalidDHParams)
	}

	holder := new(keys.DHParams)
	if err := keys.PKCS3ToDHParams(holder, der); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDHParams, err)
	}

	c.dhParams = holder
	return nil
}
