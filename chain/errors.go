package chain

import "github.com/pkg/errors"

var (
	// ErrNotDereferenceable is the panic value when reading or writing through
	// an End or Empty index.
	ErrNotDereferenceable = errors.New("index does not denote an element")

	// ErrForeignIndex is the panic value when writing through an index that was
	// not produced by the chain being written.
	ErrForeignIndex = errors.New("index does not belong to this chain")
)
