package statbank_test

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskwatch/cipher-sleuth/internal/normalize"
	"github.com/duskwatch/cipher-sleuth/internal/statbank"
)

func seq(t *testing.T, text string) *normalize.WorkingSequence {
	t.Helper()
	s, err := normalize.Normalize(text, 0)
	require.True(t, err == nil || errorsIsTooShort(err))
	return s
}

func errorsIsTooShort(err error) bool {
	_, ok := err.(*normalize.TooShortError)
	return ok
}

// S1: 20 A's.
func TestComputeRepeatingLetter(t *testing.T) {
	fv := statbank.Compute(seq(t, strings.Repeat("A", 20)))

	assert.InDelta(t, 26.0, fv.IoC, 1e-9)
	assert.InDelta(t, 0.0, fv.Shannon, 1e-9)
	assert.Equal(t, 19.0, fv.LR)
	assert.Equal(t, 0.0, fv.BinaryRandom)
}

// S2: 10 "AB" pairs.
func TestComputeAlternatingPairs(t *testing.T) {
	fv := statbank.Compute(seq(t, strings.Repeat("AB", 10)))

	assert.InDelta(t, 1.0, fv.Shannon, 1e-9)
	// Formula per spec §4.2: 2*10*9/(20*19)*26.
	assert.InDelta(t, 2*10*9.0/(20*19)*26, fv.IoC, 1e-9)
	assert.Greater(t, fv.MIC, 0.0)
}

func TestComputeAllFiniteAndBinaryRandomDomain(t *testing.T) {
	texts := []string{
		"THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG",
		"AAAAAAAAAAAAAAAAAAAA",
		strings.Repeat("XY", 30),
		"A",
	}
	for _, text := range texts {
		fv := statbank.Compute(seq(t, text))
		for _, v := range []float64{fv.IoC, fv.MIC, fv.MKA, fv.DIC, fv.EDI, fv.LR, fv.ROD, fv.LDI, fv.SDD, fv.Shannon, fv.BinaryRandom} {
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "text=%q produced a non-finite feature", text)
		}
		assert.Contains(t, []float64{0.0, 1.0}, fv.BinaryRandom)
	}
}

func TestComputeCaseAndPunctuationInvariance(t *testing.T) {
	a := statbank.Compute(seq(t, "hello, world! this is a test of the feature vector."))
	b := statbank.Compute(seq(t, "HELLOWORLDTHISISATESTOFTHEFEATUREVECTOR"))
	assert.Equal(t, a, b)
}

func TestComputeSingleLetterDegenerateCases(t *testing.T) {
	fv := statbank.Compute(seq(t, "A"))
	assert.Equal(t, 0.0, fv.IoC)
	assert.Equal(t, 0.0, fv.DIC)
	assert.Equal(t, 0.0, fv.LR)
}

// A long run of one repeated letter is legal, realistic padded/null-filled
// ciphertext and is exactly the input shape that makes a naive LR/ROD
// implementation quadratic or worse; this guards against a regression
// back to that.
func TestComputeLongestRepeatOnRepetitiveInputStaysFast(t *testing.T) {
	text := strings.Repeat("A", 100000)

	start := time.Now()
	fv := statbank.Compute(seq(t, text))
	elapsed := time.Since(start)

	assert.Equal(t, 99999.0, fv.LR)
	assert.Less(t, elapsed, 2*time.Second)
}
