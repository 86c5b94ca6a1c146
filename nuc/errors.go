package nuc

import "errors"

var (
	// ErrFormat marks a malformed record field or a missing mandatory
	// column. It is fatal: no partial result survives it.
	ErrFormat = errors.New("malformed record")

	// ErrIdentity marks an atom or modification row that populates
	// neither identifier scheme completely.
	ErrIdentity = errors.New("no complete residue identifier")
)
