package provider

import "errors"

// ErrUnknownProvider indicates a provider name is not part of the catalog.
var ErrUnknownProvider = errors.New("unknown provider")
