package entry

import "errors"

// ErrInvariant reports a broken internal invariant: a key/value kind pair
// outside the nine supported shapes. It is never a user-facing condition.
var ErrInvariant = errors.New("entry invariant violated")
