// Package ciphersleuth is the AnalyzerFacade: it orchestrates Normalizer →
// StatBank → Classifier and exposes the read-only CipherCatalog for
// display metadata. The facade is stateless beyond its references to the
// immutable profile set and catalog, so a single *Analyzer is safe to
// share across concurrent callers (spec §5).
package ciphersleuth

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/duskwatch/cipher-sleuth/internal/catalog"
	"github.com/duskwatch/cipher-sleuth/internal/classify"
	"github.com/duskwatch/cipher-sleuth/internal/normalize"
	"github.com/duskwatch/cipher-sleuth/internal/profiles"
	"github.com/duskwatch/cipher-sleuth/internal/statbank"
)

// Re-exported so callers need only import this package for the common
// path; internal/... remains available for callers who want finer control.
type (
	FeatureVector = statbank.FeatureVector
	CipherScore   = classify.CipherScore
	Metadata      = catalog.Metadata
)

// Analyzer is the AnalyzerFacade. Construct one with New or NewDefault and
// reuse it across calls: construction is the only part of this package
// that touches the catalog/profile loaders.
type Analyzer struct {
	catalog    *catalog.Catalog
	profiles   *profiles.Set
	shortFloor int
}

// New builds an Analyzer from an already-loaded catalog and profile set.
// Both must share the same 58-name cipher set (spec §3 invariant); callers
// typically get both via NewDefault instead of constructing them by hand.
func New(cat *catalog.Catalog, profileSet *profiles.Set) *Analyzer {
	return &Analyzer{catalog: cat, profiles: profileSet, shortFloor: normalize.DefaultShortFloor}
}

// NewDefault loads the embedded catalog and the compiled-in reference
// profiles, validates them against each other, and returns a ready
// Analyzer. This is the fatal-at-startup path spec §7 describes for
// CatalogParseError and ProfileSetInvalid.
func NewDefault() (*Analyzer, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, err
	}
	profileSet, err := profiles.Load(cat.Names())
	if err != nil {
		return nil, err
	}
	return New(cat, profileSet), nil
}

// Catalog exposes the loaded CipherCatalog for display-only lookups.
func (a *Analyzer) Catalog() *catalog.Catalog {
	return a.catalog
}

// Stats runs Normalizer → StatBank only and returns the feature vector.
//
// A non-nil error matching normalize.ErrInputTooShort is advisory: the
// returned FeatureVector is still valid and the caller may proceed. Any
// other non-nil error (normalize.ErrEmptyInput) is fatal; the returned
// FeatureVector is the zero value.
func (a *Analyzer) Stats(text string) (statbank.FeatureVector, error) {
	seq, err := normalize.Normalize(text, a.shortFloor)
	if err != nil && seq == nil {
		return statbank.FeatureVector{}, err
	}
	fv := statbank.Compute(seq)
	return fv, err
}

// Identify runs Normalizer → StatBank → Classifier and returns the top n
// ranked candidates. See Stats for the advisory-vs-fatal error contract.
//
// n must be >= 1 (ErrInvalidN otherwise). If highlight names a known
// cipher not already in the top n, its true-rank entry is appended.
func (a *Analyzer) Identify(text string, n int, highlight string) ([]classify.CipherScore, error) {
	if n < 1 {
		return nil, ErrInvalidN
	}

	fv, normErr := a.Stats(text)
	if normErr != nil && !isAdvisory(normErr) {
		return nil, normErr
	}

	full, err := classify.Classify(fv, a.profiles)
	if err != nil {
		return nil, err
	}

	return classify.Top(full, n, highlight), normErr
}

func isAdvisory(err error) bool {
	return err != nil && errors.Is(err, normalize.ErrInputTooShort)
}

// DisplayBasic writes a human-readable rendering of text's feature vector
// to w. This is a side effect only, per spec §4.6 — it is not part of the
// core scoring pipeline and has no return value callers should depend on
// for control flow.
func (a *Analyzer) DisplayBasic(w io.Writer, text string) error {
	fv, err := a.Stats(text)
	if err != nil && !isAdvisory(err) {
		return err
	}
	fmt.Fprintf(w, "IoC=%.4f MIC=%.4f MKA=%.4f DIC=%.4f EDI=%.4f LR=%.0f ROD=%.4f LDI=%.4f SDD=%.4f Shannon=%.4f BinaryRandom=%.1f\n",
		fv.IoC, fv.MIC, fv.MKA, fv.DIC, fv.EDI, fv.LR, fv.ROD, fv.LDI, fv.SDD, fv.Shannon, fv.BinaryRandom)
	return err
}

// IdentifyText runs Identify and renders the ranked result as a
// human-readable report, consulting the catalog for each candidate's
// primary type (display metadata only — it never affects the ranking).
func (a *Analyzer) IdentifyText(text string, n int, highlight string) (string, error) {
	scores, err := a.Identify(text, n, highlight)
	if err != nil && !isAdvisory(err) {
		return "", err
	}

	var b strings.Builder
	for _, s := range scores {
		primary := a.catalog.PrimaryType(s.Cipher)
		fmt.Fprintf(&b, "%2d. %-20s score=%.4f type=%s\n", s.Rank, s.Cipher, s.Score, primary)
	}
	return b.String(), err
}

// FeatureMap returns fv as a map keyed exactly by the spec §6 field
// spellings, for JSON/benchmark-harness consumption.
func FeatureMap(fv statbank.FeatureVector) map[string]float64 {
	return map[string]float64{
		"IoC": fv.IoC, "MIC": fv.MIC, "MKA": fv.MKA, "DIC": fv.DIC, "EDI": fv.EDI,
		"LR": fv.LR, "ROD": fv.ROD, "LDI": fv.LDI, "SDD": fv.SDD,
		"Shannon": fv.Shannon, "BinaryRandom": fv.BinaryRandom,
	}
}
