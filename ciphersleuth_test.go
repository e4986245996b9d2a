package ciphersleuth_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskwatch/cipher-sleuth"
	"github.com/duskwatch/cipher-sleuth/internal/normalize"
)

func newAnalyzer(t *testing.T) *ciphersleuth.Analyzer {
	t.Helper()
	a, err := ciphersleuth.NewDefault()
	require.NoError(t, err)
	return a
}

func TestIdentifyRejectsInvalidN(t *testing.T) {
	a := newAnalyzer(t)
	_, err := a.Identify("ANYTHING", 0, "")
	require.ErrorIs(t, err, ciphersleuth.ErrInvalidN)
}

func TestIdentifyReturnsFullCatalogForLargeN(t *testing.T) {
	a := newAnalyzer(t)
	text := strings.Repeat("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG", 5)

	scores, err := a.Identify(text, 1000, "")
	require.NoError(t, err)
	assert.Len(t, scores, 58)
}

func TestIdentifyEmptyInputIsFatal(t *testing.T) {
	a := newAnalyzer(t)
	_, err := a.Identify("!!! ??? ...", 5, "")
	require.ErrorIs(t, err, normalize.ErrEmptyInput)
}

func TestIdentifyShortInputIsAdvisoryNotFatal(t *testing.T) {
	a := newAnalyzer(t)
	scores, err := a.Identify("SHORTTEXT", 5, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, normalize.ErrInputTooShort))
	assert.Len(t, scores, 5)
}

func TestStatsInvariantUnderCaseAndPunctuation(t *testing.T) {
	a := newAnalyzer(t)
	fvA, _ := a.Stats("hello, world! this is a test of feature stability.")
	fvB, _ := a.Stats("HELLOWORLDTHISISATESTOFFEATURESTABILITY")

	if diff := cmp.Diff(fvA, fvB); diff != "" {
		t.Errorf("feature vectors differ under case/punctuation (-got +want):\n%s", diff)
	}
}

func TestFeatureMapHasExactSpecKeys(t *testing.T) {
	a := newAnalyzer(t)
	fv, _ := a.Stats(strings.Repeat("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG", 2))
	m := ciphersleuth.FeatureMap(fv)

	want := []string{"IoC", "MIC", "MKA", "DIC", "EDI", "LR", "ROD", "LDI", "SDD", "Shannon", "BinaryRandom"}
	assert.Len(t, m, len(want))
	for _, k := range want {
		_, ok := m[k]
		assert.True(t, ok, "missing feature key %q", k)
	}
}

func TestIdentifyHighlightAppendsOutOfTopN(t *testing.T) {
	a := newAnalyzer(t)
	text := strings.Repeat("THEQUICKBROWNFOXJUMPSOVERTHELAZYDOG", 5)

	full, err := a.Identify(text, 1000, "")
	require.NoError(t, err)
	outside := full[len(full)-1].Cipher

	top, err := a.Identify(text, 3, outside)
	require.NoError(t, err)
	require.Len(t, top, 4)
	assert.Equal(t, outside, top[3].Cipher)
}
