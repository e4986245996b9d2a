// Package normalize turns raw ciphertext into the canonical working
// alphabet the rest of the pipeline operates on: integers in [0,25], one
// per retained letter, in original order.
package normalize

// DefaultShortFloor is the retained-length floor below which Normalize
// reports ErrInputTooShort (spec default: 20 characters).
const DefaultShortFloor = 20

// WorkingSequence is the normalized, read-only view of a ciphertext: an
// ordered run of letter indices in [0,25] plus the 26-bin histogram of
// those indices. Both fields are derived once and never mutated after
// construction.
type WorkingSequence struct {
	Letters   []int
	Histogram [26]int
}

// Len reports the number of retained letters.
func (s *WorkingSequence) Len() int {
	return len(s.Letters)
}

// Normalize retains only characters whose uppercase form is A-Z, maps
// each to 0-25, and preserves relative order. Case folding is ASCII-only;
// no locale-specific folding is performed.
//
// Normalize(text, 0) and any non-positive floor fall back to
// DefaultShortFloor, so passing 0 does not disable the InputTooShort
// warning; a floor of 1 never triggers it.
func Normalize(text string, floor int) (*WorkingSequence, error) {
	if floor <= 0 {
		floor = DefaultShortFloor
	}

	letters := make([]int, 0, len(text))
	var hist [26]int

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			continue
		}
		idx := int(c - 'A')
		letters = append(letters, idx)
		hist[idx]++
	}

	if len(letters) == 0 {
		return nil, ErrEmptyInput
	}

	seq := &WorkingSequence{Letters: letters, Histogram: hist}

	if len(letters) < floor {
		return seq, &TooShortError{Length: len(letters), Floor: floor}
	}

	return seq, nil
}
