package blob

import "errors"

var (
	// ErrConnectionStringRequired is returned when no storage connection
	// string is provided.
	ErrConnectionStringRequired = errors.New("blob connection string required")

	// ErrContainerRequired is returned when no container name is provided.
	ErrContainerRequired = errors.New("blob container required")
)
