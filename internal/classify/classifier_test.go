package classify_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskwatch/cipher-sleuth/internal/catalog"
	"github.com/duskwatch/cipher-sleuth/internal/classify"
	"github.com/duskwatch/cipher-sleuth/internal/profiles"
	"github.com/duskwatch/cipher-sleuth/internal/statbank"
)

func loadProfiles(t *testing.T) *profiles.Set {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	set, err := profiles.Load(cat.Names())
	require.NoError(t, err)
	return set
}

func TestClassifySortedAscendingWithTieBreak(t *testing.T) {
	set := loadProfiles(t)
	fv := statbank.FeatureVector{IoC: 1.5, MIC: 40, MKA: 25, DIC: 10, EDI: 9, LR: 5, ROD: 50, LDI: 60, SDD: 40, Shannon: 4.2, BinaryRandom: 1}

	results, err := classify.Classify(fv, set)
	require.NoError(t, err)
	require.Len(t, results, 58)

	assert.True(t, sort.SliceIsSorted(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score < results[j].Score
		}
		return results[i].Cipher < results[j].Cipher
	}))
	for i, r := range results {
		assert.Equal(t, i+1, r.Rank)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	set := loadProfiles(t)
	fv := statbank.FeatureVector{IoC: 1.73, MIC: 58, MKA: 38, DIC: 68, EDI: 64, LR: 6, ROD: 52, LDI: 132, SDD: 24, Shannon: 4.1, BinaryRandom: 1}

	a, err := classify.Classify(fv, set)
	require.NoError(t, err)
	b, err := classify.Classify(fv, set)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestClassifyProfileMeanRanksFirstWithZeroScore(t *testing.T) {
	set := loadProfiles(t)
	p, ok := set.Lookup("Vigenere")
	require.True(t, ok)

	fv := statbank.FeatureVector{
		IoC: p.Mean[0], MIC: p.Mean[1], MKA: p.Mean[2], DIC: p.Mean[3], EDI: p.Mean[4],
		LR: p.Mean[5], ROD: p.Mean[6], LDI: p.Mean[7], SDD: p.Mean[8], Shannon: p.Mean[9],
		BinaryRandom: p.Mean[10],
	}

	results, err := classify.Classify(fv, set)
	require.NoError(t, err)
	assert.Equal(t, "Vigenere", results[0].Cipher)
	assert.InDelta(t, 0.0, results[0].Score, 1e-9)
}

func TestClassifyRejectsNonFiniteVector(t *testing.T) {
	set := loadProfiles(t)
	fv := statbank.FeatureVector{IoC: math.NaN()}
	_, err := classify.Classify(fv, set)
	require.ErrorIs(t, err, classify.ErrFeatureInvalid)
}

func TestClassifyRejectsEmptyProfileSet(t *testing.T) {
	_, err := classify.Classify(statbank.FeatureVector{}, &profiles.Set{})
	require.ErrorIs(t, err, classify.ErrNoProfilesLoaded)
}

func TestTopAppendsHighlightAtTrueRank(t *testing.T) {
	set := loadProfiles(t)
	fv := statbank.FeatureVector{IoC: 1.73, MIC: 58, MKA: 38, DIC: 68, EDI: 64, LR: 6, ROD: 52, LDI: 132, SDD: 24, Shannon: 4.1, BinaryRandom: 1}
	full, err := classify.Classify(fv, set)
	require.NoError(t, err)

	// Find a cipher that is NOT in the top 3.
	var outside string
	for _, c := range full[10:] {
		outside = c.Cipher
		break
	}

	top := classify.Top(full, 3, outside)
	require.Len(t, top, 4)
	assert.Equal(t, outside, top[3].Cipher)
	assert.Greater(t, top[3].Rank, 3)
}

func TestIdentifyReturnsFullCatalogWhenNExceedsCount(t *testing.T) {
	set := loadProfiles(t)
	fv := statbank.FeatureVector{IoC: 1.0, MIC: 30, MKA: 20, DIC: 10, EDI: 9, LR: 4, ROD: 50, LDI: 55, SDD: 45, Shannon: 4.5, BinaryRandom: 1}
	full, err := classify.Classify(fv, set)
	require.NoError(t, err)

	top := classify.Top(full, 1000, "")
	assert.Len(t, top, 58)
}
