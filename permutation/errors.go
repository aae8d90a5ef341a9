package permutation

import "errors"

var (
	// ErrInvalidMode indicates a Mode value other than Map or Swap.
	ErrInvalidMode = errors.New("permutation: invalid mode")

	// ErrNodeMissing indicates Apply was called in Swap mode with a
	// transposition endpoint absent from the sequence being permuted.
	ErrNodeMissing = errors.New("permutation: transposition endpoint not found in sequence")
)
