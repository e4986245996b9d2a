package normalize

import "errors"

var (
	// ErrEmptyInput indicates that no A-Z characters survived normalization.
	ErrEmptyInput = errors.New("normalize: input has no retainable letters")
)

// TooShortError is returned alongside a valid WorkingSequence when the
// retained letter count falls below the configured floor. Unlike
// ErrEmptyInput it is advisory: callers may proceed using the sequence.
type TooShortError struct {
	Length int
	Floor  int
}

func (e *TooShortError) Error() string {
	return "normalize: input too short for reliable statistics"
}

// Is lets callers match this with a sentinel via errors.Is(err, ErrInputTooShort).
func (e *TooShortError) Is(target error) bool {
	return target == ErrInputTooShort
}

// ErrInputTooShort is the sentinel matched by errors.Is against a *TooShortError.
var ErrInputTooShort = errors.New("normalize: input below statistical floor")
