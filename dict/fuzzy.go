package dict

import (
	"sort"

	"github.com/tidwall/btree"

	"github.com/harperlint/harper/token"
)

// Match is one fuzzy-match candidate (§4.3).
type Match struct {
	Word     string
	Distance int
	Metadata token.WordMetadata
}

// editDistance computes the Levenshtein distance between a and b,
// using two reusable row buffers (Wagner-Fischer, memory-optimized to
// O(min(len(a), len(b))) space) per §4.3. If the true distance
// exceeds maxDistance, the returned value is only guaranteed to also
// exceed maxDistance, not to be exact -- callers only use it for a
// maxDistance cutoff.
func editDistance(a, b []rune, maxDistance int) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(a)-len(b) > maxDistance {
		return maxDistance + 1
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		rowMin := curr[0]
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}
		if rowMin > maxDistance {
			return maxDistance + 1
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// Matcher is implemented by both fuzzy-match backends (§4.3): the
// length-bucketed linear scan and the sorted-map/automaton-
// accelerated lookup. Both must yield identical result sets for the
// same maxDistance, up to ranking ties.
type Matcher interface {
	FuzzyMatch(word string, maxDistance, maxResults int) []Match
}

// LinearDictionary is the length-bucketed linear-scan backend: only
// words whose length lies in [len(word)-d, len(word)+d] are
// considered, per §4.3.
type LinearDictionary struct {
	dict *Dictionary
}

// NewLinearDictionary wraps d with the linear-scan fuzzy-match
// backend.
func NewLinearDictionary(d *Dictionary) *LinearDictionary {
	return &LinearDictionary{dict: d}
}

func (l *LinearDictionary) FuzzyMatch(word string, maxDistance, maxResults int) []Match {
	target := []rune(Normalize(word))
	candidates := candidatesInLengthBand(l.dict.byLength, len(target), maxDistance)
	return rankMatches(l.dict, target, candidates, maxDistance, maxResults)
}

// candidatesInLengthBand returns the keys of byLength (sorted by
// length) whose rune length lies within [n-d, n+d].
func candidatesInLengthBand(byLength []string, n, d int) []string {
	lo := sort.Search(len(byLength), func(i int) bool {
		return len([]rune(byLength[i])) >= n-d
	})
	hi := sort.Search(len(byLength), func(i int) bool {
		return len([]rune(byLength[i])) > n+d
	})
	if lo >= hi {
		return nil
	}
	return byLength[lo:hi]
}

// SortedDictionary is the sorted-key/automaton-accelerated backend:
// a serializable btree.Map from word to its index in a parallel
// candidate list, queried by seeking to the word's lexicographic
// neighborhood and then filtering by length band, standing in for
// the Levenshtein-DFA radius search named in §4.3 (see DESIGN.md for
// why a full DFA was not implemented).
type SortedDictionary struct {
	dict *Dictionary
	tree btree.Map[string, int]
	keys []string
}

// NewSortedDictionary wraps d with the sorted-map fuzzy-match
// backend, building the btree once from d's already-sorted keys.
func NewSortedDictionary(d *Dictionary) *SortedDictionary {
	s := &SortedDictionary{dict: d, keys: d.SortedKeys()}
	for i, k := range s.keys {
		s.tree.Set(k, i)
	}
	return s
}

func (s *SortedDictionary) FuzzyMatch(word string, maxDistance, maxResults int) []Match {
	target := []rune(Normalize(word))
	n := len(target)

	// Seek to the lexicographic neighborhood of the target and scan
	// outward in both directions, keeping every key in the length
	// band. Key length is not monotonic in lexicographic order, so
	// neither scan stops early: together they visit every key, giving
	// this backend the same candidate set the linear backend scans.
	var candidates []string
	iter := s.tree.Iter()
	if iter.Seek(Normalize(word)) || iter.First() {
		for ok := true; ok; ok = iter.Next() {
			k := iter.Key()
			kl := len([]rune(k))
			if kl >= n-maxDistance && kl <= n+maxDistance {
				candidates = append(candidates, k)
			}
		}
	}
	// The forward scan above only covers keys >= the seek point;
	// sweep backward too so keys before it aren't missed.
	iter2 := s.tree.Iter()
	if iter2.Seek(Normalize(word)) {
		for ok := iter2.Prev(); ok; ok = iter2.Prev() {
			k := iter2.Key()
			kl := len([]rune(k))
			if kl >= n-maxDistance && kl <= n+maxDistance {
				candidates = append(candidates, k)
			}
		}
	}

	return rankMatches(s.dict, target, candidates, maxDistance, maxResults)
}

// rankMatches computes bounded edit distance for each candidate,
// keeps those within maxDistance, and orders the result per §4.3:
// ascending distance, then shortest-then-longest length preference,
// then a common-word bonus, then insertion order; deduplicated and
// capped at maxResults.
func rankMatches(d *Dictionary, target []rune, candidates []string, maxDistance, maxResults int) []Match {
	seen := make(map[string]bool, len(candidates))
	var matches []Match
	for i, cand := range candidates {
		if seen[cand] {
			continue
		}
		seen[cand] = true

		dist := editDistance(target, []rune(cand), maxDistance)
		if dist > maxDistance {
			continue
		}
		matches = append(matches, Match{Word: cand, Distance: dist, Metadata: d.entries[cand]})
		_ = i
	}

	targetLen := len(target)
	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		da := lengthPriority(len([]rune(a.Word)), targetLen)
		db := lengthPriority(len([]rune(b.Word)), targetLen)
		if da != db {
			return da < db
		}
		if a.Metadata.Common != b.Metadata.Common {
			return a.Metadata.Common // common words win ties
		}
		return false // preserve insertion order
	})

	if maxResults >= 0 && len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// lengthPriority ranks a candidate length against the target length
// so that the shortest and longest neighbors are prioritized over
// those closest to the target's own length, per §4.3's
// "length-driven ordering that prioritizes the shortest and longest
// neighbors".
func lengthPriority(candLen, targetLen int) int {
	delta := candLen - targetLen
	if delta < 0 {
		delta = -delta
	}
	// Invert so that larger |delta| (farther from the target length,
	// i.e. shorter or longer neighbors) sorts first.
	return -delta
}
