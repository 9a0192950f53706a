package materialize

import (
	"fmt"
	"strings"

	"github.com/ygofr/ygosync/internal/dataset"
	"github.com/ygofr/ygosync/internal/sync"
	"github.com/ygofr/ygosync/internal/ygoprodeck"
)

// BuildCollectionCards assigns each fetched card its printed region code
// for the target set, one entry per card in fetch order. The synthetic
// fallback numbers cards by their 1-based position in that order; the API
// does not guarantee the order, so synthetic ids can move between runs.
func BuildCollectionCards(cards []ygoprodeck.Card, code, collectionID string) []dataset.CollectionCard {
	lower := strings.ToLower(code)
	upper := strings.ToUpper(code)
	if collectionID == "" {
		collectionID = upper
	}

	out := make([]dataset.CollectionCard, 0, len(cards))
	for i, card := range cards {
		frCode := regionCode(card, lower, upper, i+1)
		out = append(out, dataset.CollectionCard{
			ID:           frCode,
			CardID:       frCode,
			CollectionID: collectionID,
		})
	}
	return out
}

// regionCode picks the card's printed code for the set: an English print
// code with the region swapped to FR when the card's printed-set list has
// a match, a synthetic FR number otherwise.
func regionCode(card ygoprodeck.Card, lower, upper string, position int) string {
	for _, cs := range card.CardSets {
		if sync.NormalizeCode(cs.SetName) != lower &&
			!strings.HasPrefix(strings.ToLower(cs.SetCode), lower) {
			continue
		}
		if strings.Contains(cs.SetCode, "-EN") {
			return strings.Replace(cs.SetCode, "-EN", "-FR", 1)
		}
		break
	}
	return fmt.Sprintf("%s-FR%03d", upper, position)
}
