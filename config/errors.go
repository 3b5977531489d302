package config

import "errors"

// ErrMissingVariable indicates a required environment variable is
// unset. The wrapped message names the variable.
var ErrMissingVariable = errors.New("missing required environment variable")
