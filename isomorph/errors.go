package isomorph

import "errors"

// ErrBudgetExceeded is returned by EmbedsWithTrace (but never by Embeds,
// which folds it into a false result) when the matcher's call budget is
// exhausted before an embedding is found or refuted.
var ErrBudgetExceeded = errors.New("isomorph: call budget exceeded")
