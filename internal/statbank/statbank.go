// Package statbank computes the fixed 11-dimensional statistical feature
// vector the classifier scores against reference profiles. Every
// descriptor is a pure, closed-form function of a normalize.WorkingSequence:
// no randomness, no I/O, and histogram accumulation is done in integers so
// results are bit-reproducible across platforms before the final
// floating-point scaling step.
package statbank

import (
	"math"

	"github.com/montanaflynn/stats"

	"github.com/duskwatch/cipher-sleuth/internal/normalize"
)

// FeatureVector is a fixed-shape record of the 11 named descriptors. Field
// order and names are part of the external contract: consumers key on
// these exact spellings.
type FeatureVector struct {
	IoC          float64
	MIC          float64
	MKA          float64
	DIC          float64
	EDI          float64
	LR           float64
	ROD          float64
	LDI          float64
	SDD          float64
	Shannon      float64
	BinaryRandom float64
}

// maxTrialPeriod bounds the period/shift search for MIC and MKA (spec: 1..15).
const maxTrialPeriod = 15

// Compute derives the FeatureVector from a WorkingSequence. It never
// returns an error: every descriptor has a locally-handled default for its
// degenerate case (spec §7 propagation policy), so only non-finite output
// would indicate a bug in this package, not a caller problem.
func Compute(seq *normalize.WorkingSequence) FeatureVector {
	s := seq.Letters
	h := seq.Histogram
	n := len(s)

	return FeatureVector{
		IoC:          indexOfCoincidence(h[:], n),
		MIC:          maxIndexOfCoincidence(s),
		MKA:          meanKappa(s),
		DIC:          digraphicIoC(s),
		EDI:          evenDistributionIndex(s),
		LR:           float64(longestRepeat(s)),
		ROD:          repeatOddDistance(s),
		LDI:          logDigraphIndex(s),
		SDD:          singleLetterDigraphDiscrepancy(s, h[:]),
		Shannon:      shannonEntropy(h[:], n),
		BinaryRandom: binaryRandomCheck(s),
	}
}

// indexOfCoincidence implements spec §4.2 IoC: undefined (0) for N<2.
func indexOfCoincidence(h []int, n int) float64 {
	if n < 2 {
		return 0
	}
	sum := 0.0
	for _, c := range h {
		sum += float64(c) * float64(c-1)
	}
	return sum / (float64(n) * float64(n-1)) * 26.0
}

// digraphHistogram builds the 676-bin overlapping-digraph histogram.
func digraphHistogram(s []int) [676]int {
	var d [676]int
	for i := 0; i+1 < len(s); i++ {
		d[s[i]*26+s[i+1]]++
	}
	return d
}

func digraphicIoC(s []int) float64 {
	n := len(s)
	if n < 3 {
		return 0
	}
	d := digraphHistogram(s)
	pairs := n - 1
	sum := 0.0
	for _, c := range d {
		sum += float64(c) * float64(c-1)
	}
	denom := float64(pairs) * float64(pairs-1)
	if denom <= 0 {
		return 0
	}
	return 10000.0 * sum / denom
}

// evenDistributionIndex is DIC computed over non-overlapping digraphs
// (positions 0,2,4,...); the trailing letter is dropped for odd N.
func evenDistributionIndex(s []int) float64 {
	m := len(s) / 2 // number of non-overlapping pairs
	if m < 2 {
		return 0
	}
	var d [676]int
	for i := 0; i < m; i++ {
		a, b := s[2*i], s[2*i+1]
		d[a*26+b]++
	}
	sum := 0.0
	for _, c := range d {
		sum += float64(c) * float64(c-1)
	}
	denom := float64(m) * float64(m-1)
	if denom <= 0 {
		return 0
	}
	return 10000.0 * sum / denom
}

// cosetIoC computes the IoC of the subsequence at positions ≡ r (mod p).
func cosetIoC(s []int, p, r int) float64 {
	var h [26]int
	n := 0
	for i := r; i < len(s); i += p {
		h[s[i]]++
		n++
	}
	return indexOfCoincidence(h[:], n)
}

// maxIndexOfCoincidence is MIC: for each trial period, the mean coset IoC,
// maximized across periods 1..15, scaled by 1000.
func maxIndexOfCoincidence(s []int) float64 {
	if len(s) < 2 {
		return 0
	}
	best := 0.0
	for p := 1; p <= maxTrialPeriod; p++ {
		if p > len(s) {
			break
		}
		cosetVals := make(stats.Float64Data, 0, p)
		for r := 0; r < p; r++ {
			cosetVals = append(cosetVals, cosetIoC(s, p, r))
		}
		mean, err := cosetVals.Mean()
		if err != nil {
			continue
		}
		if mean > best {
			best = mean
		}
	}
	return 1000.0 * best
}

// kappa is the fraction of positions i with s[i] == s[i+d].
func kappa(s []int, d int) float64 {
	n := len(s)
	if n-d <= 0 {
		return 0
	}
	matches := 0
	for i := 0; i+d < n; i++ {
		if s[i] == s[i+d] {
			matches++
		}
	}
	return float64(matches) / float64(n-d)
}

// meanKappa is MKA: the maximum kappa(d) over shifts 1..15, scaled by 1000.
// Despite the name (inherited from the classic "mean kappa test" family),
// the spec formula takes a max over shifts, not a mean.
func meanKappa(s []int) float64 {
	n := len(s)
	if n < 2 {
		return 0
	}
	shifts := make(stats.Float64Data, 0, maxTrialPeriod)
	for d := 1; d <= maxTrialPeriod && d < n; d++ {
		shifts = append(shifts, kappa(s, d))
	}
	if len(shifts) == 0 {
		return 0
	}
	best, err := shifts.Max()
	if err != nil {
		return 0
	}
	return 1000.0 * best
}

func logDigraphIndex(s []int) float64 {
	n := len(s)
	if n < 2 {
		return 0
	}
	sum := 0.0
	for i := 0; i+1 < n; i++ {
		sum += ldiLogFreq[s[i]*26+s[i+1]]
	}
	return 100.0 * sum / float64(n-1)
}

func singleLetterDigraphDiscrepancy(s []int, h []int) float64 {
	n := len(s)
	if n < 2 {
		return 0
	}
	d := digraphHistogram(s)
	pairs := float64(n - 1)
	total := 0.0
	for j, c := range d {
		observed := float64(c) / pairs
		expected := (float64(h[j/26]) / float64(n)) * (float64(h[j%26]) / float64(n))
		total += math.Abs(observed - expected)
	}
	return 100.0 * total
}

// repeatOddDistance is ROD. For a fixed letter value, (j-i) is odd exactly
// when positions i and j fall on opposite index parities, so counting each
// letter's occurrences by parity of their position and combining those
// counts gives R_odd/R_even in a single O(n) pass, with no need to
// enumerate position pairs directly.
func repeatOddDistance(s []int) float64 {
	var evenPos, oddPos [26]int
	for i, v := range s {
		if i%2 == 0 {
			evenPos[v]++
		} else {
			oddPos[v]++
		}
	}

	var oddCount, evenCount int
	for v := 0; v < 26; v++ {
		e, o := evenPos[v], oddPos[v]
		oddCount += e * o
		evenCount += e*(e-1)/2 + o*(o-1)/2
	}

	denom := oddCount + evenCount
	if denom == 0 {
		return 0
	}
	return 100.0 * float64(oddCount) / float64(denom)
}

// longestRepeat is LR: the length of the longest substring occurring at
// least twice in s. A substring of length l repeating implies every
// shorter prefix of that pair also repeats, so the candidate length is
// monotonic and can be found by binary search; each length is tested in
// O(n) with a rolling hash, giving O(n log n) overall instead of the
// naive O(n^2) (or worse, once paired with the inner match-length scan)
// pairwise suffix comparison — important since this system's inputs run
// up to 1e5 characters and classical ciphertext routinely contains long
// runs of a single repeated letter.
func longestRepeat(s []int) int {
	n := len(s)
	if n < 2 {
		return 0
	}
	lo, hi, best := 0, n-1, 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if hasRepeatOfLength(s, mid) {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best
}

const (
	repeatHashBase uint64 = 131
	repeatHashMod  uint64 = 1_000_000_007
)

// hasRepeatOfLength reports whether s contains two distinct starting
// positions whose length-l windows are identical, via a Rabin-Karp
// rolling hash with a direct-comparison check on hash collisions (so the
// result is exact, not probabilistic).
func hasRepeatOfLength(s []int, l int) bool {
	if l <= 0 {
		return true
	}
	n := len(s)
	if l > n-1 {
		return false
	}

	pow := uint64(1)
	for i := 0; i < l-1; i++ {
		pow = (pow * repeatHashBase) % repeatHashMod
	}

	h := uint64(0)
	for i := 0; i < l; i++ {
		h = (h*repeatHashBase + uint64(s[i]+1)) % repeatHashMod
	}

	seen := make(map[uint64][]int)
	seen[h] = []int{0}

	for start := 1; start+l <= n; start++ {
		lead := (uint64(s[start-1]+1) * pow) % repeatHashMod
		h = (h + repeatHashMod - lead) % repeatHashMod
		h = (h * repeatHashBase) % repeatHashMod
		h = (h + uint64(s[start+l-1]+1)) % repeatHashMod

		if positions, ok := seen[h]; ok {
			for _, p := range positions {
				if equalWindow(s, p, start, l) {
					return true
				}
			}
		}
		seen[h] = append(seen[h], start)
	}
	return false
}

func equalWindow(s []int, a, b, l int) bool {
	for i := 0; i < l; i++ {
		if s[a+i] != s[b+i] {
			return false
		}
	}
	return true
}

func shannonEntropy(h []int, n int) float64 {
	if n == 0 {
		return 0
	}
	entropy := 0.0
	for _, c := range h {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(n)
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// binaryRandomCheck treats each letter as a 5-bit value and runs a
// monobit-style check against the expected ones-count of a random
// sequence of the same length.
func binaryRandomCheck(s []int) float64 {
	n := len(s)
	if n == 0 {
		return 0
	}
	ones := 0
	for _, v := range s {
		for bit := 0; bit < 5; bit++ {
			if v&(1<<uint(bit)) != 0 {
				ones++
			}
		}
	}
	bits := float64(5 * n)
	expected := bits / 2.0
	k := math.Abs(float64(ones) - expected)
	if k/math.Sqrt(bits) < 2.0 {
		return 1.0
	}
	return 0.0
}
