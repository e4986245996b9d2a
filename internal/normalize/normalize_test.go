package normalize_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskwatch/cipher-sleuth/internal/normalize"
)

func TestNormalizeBasic(t *testing.T) {
	seq, err := normalize.Normalize("Hello, World!", 0)
	require.Error(t, err) // shorter than the default 20-char floor
	require.True(t, errors.Is(err, normalize.ErrInputTooShort))
	require.NotNil(t, seq)

	assert.Equal(t, []int{7, 4, 11, 11, 14, 22, 14, 17, 11, 3}, seq.Letters)
	assert.Equal(t, 10, seq.Len())
}

func TestNormalizeEmptyInput(t *testing.T) {
	_, err := normalize.Normalize("!!! ??? ...", 0)
	require.ErrorIs(t, err, normalize.ErrEmptyInput)
}

func TestNormalizeCaseAndPunctuationInvariance(t *testing.T) {
	a, errA := normalize.Normalize("hello, world!", 0)
	b, errB := normalize.Normalize("HELLOWORLD", 0)
	require.True(t, errA == nil || errors.Is(errA, normalize.ErrInputTooShort))
	require.True(t, errB == nil || errors.Is(errB, normalize.ErrInputTooShort))

	assert.Equal(t, a.Letters, b.Letters)
	assert.Equal(t, a.Histogram, b.Histogram)
}

func TestNormalizeIdempotent(t *testing.T) {
	seq, _ := normalize.Normalize("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG", 0)

	letters := make([]byte, len(seq.Letters))
	for i, v := range seq.Letters {
		letters[i] = byte('A' + v)
	}

	again, err := normalize.Normalize(string(letters), 0)
	require.NoError(t, err)
	assert.Equal(t, seq.Letters, again.Letters)
}

func TestNormalizeNoFloorWarningWhenLongEnough(t *testing.T) {
	seq, err := normalize.Normalize("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG", 0)
	require.NoError(t, err)
	assert.Equal(t, 35, seq.Len())
}
