package signature

import "errors"

var ErrNonceRequired = errors.New("nonce is required when no nonce store is configured")
