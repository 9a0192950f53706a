package sync

import (
	"strings"

	"github.com/ygofr/ygosync/internal/ygoprodeck"
)

// NewSet pairs a remote set with the file code it would be stored under.
type NewSet struct {
	Set  ygoprodeck.CardSet
	Code string
}

// CandidateCodes returns every identifier under which a remote set may
// already exist locally, most specific first. Historical files were named
// inconsistently (raw codes, normalized codes, truncated names), so
// membership is tested against all of them.
func CandidateCodes(set ygoprodeck.CardSet) []string {
	return []string{
		strings.ToLower(set.SetCode),
		NormalizeCode(set.SetCode),
		NormalizeCode(set.SetName),
		SimplifyName(set.SetName),
	}
}

// Plan filters the remote catalog down to the sets with no local data file
// yet, preserving the catalog order. A set whose candidate codes all miss
// the known set is new; a collision after normalization can hide a
// genuinely new set.
func Plan(known map[string]struct{}, remote []ygoprodeck.CardSet) []NewSet {
	out := make([]NewSet, 0)
	for _, set := range remote {
		exists := false
		for _, code := range CandidateCodes(set) {
			if _, ok := known[code]; ok {
				exists = true
				break
			}
		}
		if !exists {
			out = append(out, NewSet{Set: set, Code: strings.ToLower(set.SetCode)})
		}
	}
	return out
}
