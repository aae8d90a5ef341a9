package assembler

import "errors"

// ErrIdentityPermutation indicates a glink's permutation, applied to the
// running layout, produced no change at all — a chain-internal
// invariant violation (§6's ChainInternalInvariant): every glink,
// including the head, must move the layout.
var ErrIdentityPermutation = errors.New("assembler: glink permutation is the identity on the current layout")
