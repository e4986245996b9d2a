package classify

import "errors"

// ErrFeatureInvalid indicates the feature vector handed to Classify
// contains a non-finite value (NaN or ±Inf) — a numeric bug upstream, not
// a user-input problem.
var ErrFeatureInvalid = errors.New("classify: feature vector contains a non-finite value")

// ErrNoProfilesLoaded indicates Classify was invoked against an empty
// profile set.
var ErrNoProfilesLoaded = errors.New("classify: no reference profiles loaded")
