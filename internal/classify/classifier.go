// Package classify scores a feature vector against a set of per-cipher
// reference profiles and ranks the candidates. Scoring per cipher is
// read-only and independent of every other cipher, so it may be
// parallelized across a worker pool; the final ranking is always produced
// by a single deterministic sort after every worker has joined.
package classify

import (
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/duskwatch/cipher-sleuth/internal/profiles"
	"github.com/duskwatch/cipher-sleuth/internal/statbank"
)

// CipherScore pairs a cipher name with its match score (lower is better)
// and the 1-based rank it holds in the full, sorted candidate list.
type CipherScore struct {
	Cipher string
	Score  float64
	Rank   int
}

// vectorColumns returns v's fields in the exact order profiles.FeatureOrder
// uses: IoC, MIC, MKA, DIC, EDI, LR, ROD, LDI, SDD, Shannon, BinaryRandom.
func vectorColumns(v statbank.FeatureVector) [profiles.NumFeatures]float64 {
	return [profiles.NumFeatures]float64{
		v.IoC, v.MIC, v.MKA, v.DIC, v.EDI, v.LR, v.ROD, v.LDI, v.SDD, v.Shannon, v.BinaryRandom,
	}
}

func allFinite(cols [profiles.NumFeatures]float64) bool {
	for _, x := range cols {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// score computes the weighted squared Mahalanobis-style distance (spec
// §4.4) of cols against one cipher's profile.
func score(cols [profiles.NumFeatures]float64, p profiles.Profile, sigma2 [profiles.NumFeatures]float64) float64 {
	total := 0.0
	for f := 0; f < profiles.NumFeatures; f++ {
		diff := cols[f] - p.Mean[f]
		total += p.Weight[f] * diff * diff / sigma2[f]
	}
	return total
}

// Classify scores v against every profile in set and returns the full
// candidate list sorted ascending by score (lower is better), ties broken
// by ascending lexicographic cipher name. Rank is always 1-based position
// in this full list.
func Classify(v statbank.FeatureVector, set *profiles.Set) ([]CipherScore, error) {
	if set == nil || set.Len() == 0 {
		return nil, ErrNoProfilesLoaded
	}

	cols := vectorColumns(v)
	if !allFinite(cols) {
		return nil, ErrFeatureInvalid
	}

	sigma2 := set.Sigma2()
	names := set.Names()

	results := make([]CipherScore, len(names))
	workers := runtime.GOMAXPROCS(0)
	if workers > len(names) {
		workers = len(names)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	indices := make(chan int, len(names))
	for i := range names {
		indices <- i
	}
	close(indices)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				name := names[i]
				p, _ := set.Lookup(name)
				results[i] = CipherScore{Cipher: name, Score: score(cols, p, sigma2)}
			}
		}()
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score < results[j].Score
		}
		return results[i].Cipher < results[j].Cipher
	})
	for i := range results {
		results[i].Rank = i + 1
	}

	return results, nil
}

// Top returns the first n entries of a full, sorted candidate list. If
// highlight names a cipher present in full but not within the first n
// entries, its true-rank entry is appended at the end so callers never
// lose track of a specifically requested cipher.
func Top(full []CipherScore, n int, highlight string) []CipherScore {
	if n > len(full) {
		n = len(full)
	}
	out := make([]CipherScore, n, n+1)
	copy(out, full[:n])

	if highlight == "" {
		return out
	}
	for _, c := range out {
		if c.Cipher == highlight {
			return out
		}
	}
	for _, c := range full {
		if c.Cipher == highlight {
			out = append(out, c)
			break
		}
	}
	return out
}
