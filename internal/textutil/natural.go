package textutil

import (
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// The collator buffers internally, so access is serialized.
var (
	naturalMu       sync.Mutex
	naturalCollator = collate.New(language.Und, collate.Numeric, collate.IgnoreCase)
)

// NaturalCompare orders strings the way a file browser does: runs of digits
// compare numerically and letter case is ignored, so "a2" sorts before "a10".
// It returns -1, 0, or +1.
func NaturalCompare(a, b string) int {
	naturalMu.Lock()
	defer naturalMu.Unlock()
	return naturalCollator.CompareString(a, b)
}

// SortNatural sorts names in place using NaturalCompare. The sort is stable
// so names that compare equal (differing only in case) keep their input
// order.
func SortNatural(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return NaturalCompare(names[i], names[j]) < 0
	})
}
