package quekno

import "errors"

// ErrNilConfig is returned by New when given a nil *config.Config.
var ErrNilConfig = errors.New("quekno: config must not be nil")
