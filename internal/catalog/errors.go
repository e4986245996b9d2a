package catalog

import "errors"

// ErrCatalogParseError indicates the catalog JSON is malformed or a
// required key is missing from an entry.
var ErrCatalogParseError = errors.New("catalog: parse error")

// unknownSentinel is what metadata lookups return for an unrecognized
// cipher name (spec §4.5).
const unknownSentinel = "unknown"
