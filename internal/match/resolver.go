package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/ygofr/ygosync/internal/ygoprodeck"
)

// Resolve finds the remote set a user-supplied name refers to. A name
// equal to a set code wins outright, then an exact normalized-name match,
// then the closest fuzzy candidate within the distance threshold.
func Resolve(name string, sets []ygoprodeck.CardSet) (ygoprodeck.CardSet, error) {
	target := normalizeName(name)
	if target == "" {
		return ygoprodeck.CardSet{}, fmt.Errorf("empty set name")
	}

	for i, s := range sets {
		if strings.EqualFold(s.SetCode, strings.TrimSpace(name)) {
			return sets[i], nil
		}
	}

	byNorm := make(map[string]int, len(sets))
	names := make([]string, 0, len(sets))
	for i, s := range sets {
		n := normalizeName(s.SetName)
		if n == "" {
			continue
		}
		if _, dup := byNorm[n]; !dup {
			byNorm[n] = i
			names = append(names, n)
		}
	}

	if i, ok := byNorm[target]; ok {
		return sets[i], nil
	}

	thr := distanceThreshold(len(target))
	candidates := filterCandidates(names, target)
	ranks := fuzzy.RankFind(target, candidates)
	sort.Sort(ranks)
	if len(ranks) == 0 || ranks[0].Distance > thr {
		if len(ranks) > 0 {
			closest := sets[byNorm[ranks[0].Target]].SetName
			return ygoprodeck.CardSet{}, fmt.Errorf("no set matching %q (closest: %q)", name, closest)
		}
		return ygoprodeck.CardSet{}, fmt.Errorf("no set matching %q", name)
	}

	return sets[byNorm[ranks[0].Target]], nil
}

// distanceThreshold calculates the acceptable edit distance (~20% of the
// pattern length, between 1 and 3).
func distanceThreshold(n int) int {
	th := n / 5
	if th < 1 {
		return 1
	}
	if th > 3 {
		return 3
	}
	return th
}

// filterCandidates keeps the names sharing the pattern's first rune; the
// edit-distance scan handles the rest.
func filterCandidates(names []string, pattern string) []string {
	firstRune := func(s string) rune {
		for _, r := range s {
			return r
		}
		return 0
	}

	fr := firstRune(pattern)
	candidates := make([]string, 0, len(names)/4)
	for _, n := range names {
		if firstRune(n) != fr {
			continue
		}
		candidates = append(candidates, n)
	}

	return candidates
}
