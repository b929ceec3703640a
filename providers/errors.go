package providers

import "errors"

// ErrInvalidEndpoint is returned if provider is initialized with
// endpoint which is not an absolute HTTP(S) URL.
var ErrInvalidEndpoint = errors.New("endpoint should be an absolute http(s) url")
