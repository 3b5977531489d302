// Package config loads the environment-driven settings for the
// docpipe binaries. Required variables fail fast with an error naming
// the variable; optional ones carry the service defaults.
package config
