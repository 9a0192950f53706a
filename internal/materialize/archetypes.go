package materialize

import (
	"strings"

	"github.com/ygofr/ygosync/internal/dataset"
	"github.com/ygofr/ygosync/internal/ygoprodeck"
)

// ExtractArchetypes returns the archetypes named by cards that are not in
// existing yet, with ids continuing after lastID in the order the cards
// were fetched. Names are deduplicated within the card list too.
func ExtractArchetypes(cards []ygoprodeck.Card, existing map[string]struct{}, lastID int) []dataset.Archetype {
	seen := make(map[string]struct{})
	var out []dataset.Archetype
	id := lastID
	for _, card := range cards {
		name := strings.TrimSpace(card.Archetype)
		if name == "" {
			continue
		}
		if _, ok := existing[name]; ok {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		id++
		out = append(out, dataset.Archetype{ID: id, Name: name, NameEn: name})
	}
	return out
}
