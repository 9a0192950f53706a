package materialize

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/ygofr/ygosync/internal/dataset"
)

var rePrintedNumber = regexp.MustCompile(`-[A-Za-z]*(\d+)`)

// printedNumber extracts the numeric tail of a printed code, with or
// without a region infix (SDY-001 and SDY-FR001 are both 1). Codes
// without one sort first.
func printedNumber(id string) int {
	m := rePrintedNumber.FindStringSubmatch(id)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// SortByPrintedNumber orders the collection-card entries by printed card
// number and keeps the cards list aligned; the two slices correspond by
// index. When the lengths disagree only the collection cards are sorted.
func SortByPrintedNumber(cards []dataset.Card, collectionCards []dataset.CollectionCard) ([]dataset.Card, []dataset.CollectionCard) {
	idx := make([]int, len(collectionCards))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return printedNumber(collectionCards[idx[a]].ID) < printedNumber(collectionCards[idx[b]].ID)
	})

	outCC := make([]dataset.CollectionCard, len(collectionCards))
	for i, j := range idx {
		outCC[i] = collectionCards[j]
	}

	if len(cards) != len(collectionCards) {
		return cards, outCC
	}
	outCards := make([]dataset.Card, len(cards))
	for i, j := range idx {
		outCards[i] = cards[j]
	}
	return outCards, outCC
}
