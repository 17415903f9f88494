package blob

import "errors"

// ErrNotFound signals that no blob exists at the requested key.
// Rehydration treats it as "nothing persisted yet", not a failure.
var ErrNotFound = errors.New("blob not found")
