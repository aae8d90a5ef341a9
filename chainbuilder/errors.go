package chainbuilder

import "errors"

// ErrNoProgress indicates next_glink exhausted its subgraph-redraw budget
// without finding a candidate that forms a strong glink. Unlike the
// specification's "indefinite progress attempts" contract, this package
// bounds retries so a pathological architecture graph fails loudly rather
// than spinning forever. The bound is the package constant maxRedraws and
// is not configurable by callers.
var ErrNoProgress = errors.New("chainbuilder: exhausted subgraph redraws without a strong glink")
