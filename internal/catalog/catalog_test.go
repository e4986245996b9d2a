package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskwatch/cipher-sleuth/internal/catalog"
)

var expectedNames = []string{
	"6x6bifid", "6x6playfair", "Autokey", "Bazeries", "Beaufort", "CONDI", "Grandpre",
	"Grandpre10x10", "Gromark", "NihilistSub6x6", "Patristocrat", "Quagmire I", "Quagmire II",
	"Quagmire III", "Quagmire IV", "Slidefair", "Swagman", "Variant", "Vigenere", "amsco",
	"bifid", "cadenus", "checkerboard", "cmBifid", "columnar", "compressocrat", "digrafid",
	"foursquare", "fractionatedMorse", "grille", "homophonic", "keyphrase", "monomeDinome",
	"morbit", "myszkowski", "nicodemus", "nihilistSub", "nihilistTramp", "numberedKey",
	"periodicGromark", "phillips", "playfair", "pollux", "porta", "portax", "progressiveKey",
	"ragbaby", "redefence", "routeTramp", "runningKey", "sequenceTramp", "seriatedPlayfair",
	"simplesubstitution", "syllabary", "tridigital", "trifid", "trisquare", "twosquare",
}

func TestLoadHasExactly58Ciphers(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)
	assert.Equal(t, 58, cat.Len())
	assert.ElementsMatch(t, expectedNames, cat.Names())
}

func TestLookupUnknownReturnsSentinel(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	assert.Equal(t, "unknown", cat.PrimaryType("NotACipher"))
	assert.Equal(t, "unknown", cat.SizeTag("NotACipher"))
}

func TestCipherNameEqualityIsCaseAndSpaceSensitive(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	assert.NotEqual(t, "unknown", cat.SizeTag("Quagmire I"))
	assert.Equal(t, "unknown", cat.SizeTag("QuagmireI"))
	assert.Equal(t, "unknown", cat.SizeTag("quagmire I"))
}

func TestFingerprintStableForIdenticalBytes(t *testing.T) {
	a, err := catalog.Load()
	require.NoError(t, err)
	b, err := catalog.Load()
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEmpty(t, a.Fingerprint())
}

func TestLoadFileRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Vigenere": {`), 0o600))

	_, err := catalog.LoadFile(path)
	require.ErrorIs(t, err, catalog.ErrCatalogParseError)
}

func TestLoadFileRejectsMissingSizeKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "missing_size.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Vigenere": {"types": ["substitution"]}}`), 0o600))

	_, err := catalog.LoadFile(path)
	require.ErrorIs(t, err, catalog.ErrCatalogParseError)
}
