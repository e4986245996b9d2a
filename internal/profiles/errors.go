package profiles

import "errors"

// ErrProfileSetInvalid is the fatal startup error raised when the compiled
// profile table is missing an entry for a catalog cipher, or a profile is
// missing an entry for one of the 11 feature columns.
var ErrProfileSetInvalid = errors.New("profiles: profile set invalid")
