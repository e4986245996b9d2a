// Package profiles holds the per-cipher reference statistics the
// classifier scores a FeatureVector against: an expected value and a
// weight for each of the 11 features, plus a shared per-feature
// normalization constant. The table is a process-wide constant, built once
// in data.go and validated at Load time; it is never mutated afterward.
package profiles

import "fmt"

// NumFeatures is the fixed width of every mean/weight vector (spec §3).
const NumFeatures = 11

// Profile is one cipher's expected-value and weight vector, column-aligned
// with FeatureOrder().
type Profile struct {
	Mean   [NumFeatures]float64
	Weight [NumFeatures]float64
}

// Set is the full, immutable mapping from cipher name to Profile, plus the
// shared per-feature normalization constants.
type Set struct {
	profiles map[string]Profile
	sigma2   [NumFeatures]float64
}

// FeatureOrder returns the column order every Mean/Weight/Sigma2 vector is
// aligned to. Callers translate a statbank.FeatureVector into this same
// order before scoring.
func FeatureOrder() [NumFeatures]string {
	return featureOrder
}

// Sigma2 returns the shared per-feature normalization constants.
func (s *Set) Sigma2() [NumFeatures]float64 {
	return s.sigma2
}

// Lookup returns the profile for a cipher name and whether it was found.
func (s *Set) Lookup(cipher string) (Profile, bool) {
	p, ok := s.profiles[cipher]
	return p, ok
}

// Names returns every cipher name the set has a profile for. The returned
// slice is a fresh copy; callers may sort or mutate it freely.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	return names
}

// Len reports how many cipher profiles are loaded.
func (s *Set) Len() int {
	return len(s.profiles)
}

// Load validates the compiled-in profile table against the supplied set of
// known cipher names (normally catalog.Names()) and returns an immutable
// Set. It fails fast with ErrProfileSetInvalid if any known cipher lacks a
// profile, or vice versa.
func Load(knownCiphers []string) (*Set, error) {
	known := make(map[string]bool, len(knownCiphers))
	for _, n := range knownCiphers {
		known[n] = true
	}

	for name := range rawProfiles {
		if !known[name] {
			return nil, fmt.Errorf("%w: profile %q has no matching catalog entry", ErrProfileSetInvalid, name)
		}
	}
	for name := range known {
		if _, ok := rawProfiles[name]; !ok {
			return nil, fmt.Errorf("%w: cipher %q has no reference profile", ErrProfileSetInvalid, name)
		}
	}

	profiles := make(map[string]Profile, len(rawProfiles))
	for name, raw := range rawProfiles {
		profiles[name] = Profile{Mean: raw.mean, Weight: raw.weight}
	}

	return &Set{profiles: profiles, sigma2: featureSigma2}, nil
}
