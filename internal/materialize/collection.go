package materialize

import (
	"strings"
	"time"

	"github.com/ygofr/ygosync/internal/dataset"
	"github.com/ygofr/ygosync/internal/ygoprodeck"
)

// BuildCollection derives the single-element collection record for a set.
// The release date comes from the API's TCG date, or today when the API
// has none.
func BuildCollection(set ygoprodeck.CardSet, code string, now time.Time) []dataset.Collection {
	release := set.TCGDate
	if release == "" {
		release = now.Format("2006-01-02")
	}
	return []dataset.Collection{{
		ID:          strings.ToLower(code),
		Name:        set.SetName,
		NameEn:      set.SetName,
		Type:        collectionType(set.SetName),
		CodePrefix:  strings.ToUpper(code) + "-",
		ReleaseDate: release,
	}}
}

// collectionType guesses the product type from the set name. The checks
// run in this order, so "Structure Deck" products classify as starter;
// the existing dataset was built that way.
func collectionType(name string) string {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "starter") || strings.Contains(n, "deck"):
		return "starter"
	case strings.Contains(n, "booster"):
		return "booster"
	case strings.Contains(n, "structure"):
		return "structure"
	default:
		return "booster"
	}
}
