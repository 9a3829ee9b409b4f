package xkc

import (
	"cmp"
	"math/bits"
	"slices"
)

// letter is one distinct symbol with its aggregate frequency over all runs.
type letter struct {
	sym  uint32
	freq int
}

// buildAlphabet folds runs into a frequency-ranked alphabet. Each run either
// bumps an existing letter or appends a new one; the linear search is fine
// because the codec rejects alphabets past 256 letters anyway. The result is
// sorted by descending frequency with ties keeping first-appearance order,
// which is the order the tree is built in on both ends.
func buildAlphabet(runs []run) []letter {
	alphabet := make([]letter, 0, 16)
	for _, r := range runs {
		found := false
		for i := range alphabet {
			if alphabet[i].sym == r.sym {
				alphabet[i].freq += int(r.count)
				found = true
				break
			}
		}
		if !found {
			alphabet = append(alphabet, letter{sym: r.sym, freq: int(r.count)})
		}
	}
	slices.SortStableFunc(alphabet, func(a, b letter) int {
		return cmp.Compare(b.freq, a.freq)
	})
	return alphabet
}

// bitsNeeded returns the width of the depth field for a tree of the given
// height: the bit length of the height, clamped to at least one bit. The
// clamp keeps single-letter alphabets decodable; with a zero-width field
// every emission would be empty and the payload could never advance.
func bitsNeeded(height int) int {
	if n := bits.Len(uint(height)); n > 0 {
		return n
	}
	return 1
}
