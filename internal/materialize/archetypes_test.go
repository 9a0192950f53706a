package materialize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ygofr/ygosync/internal/dataset"
	"github.com/ygofr/ygosync/internal/ygoprodeck"
)

func TestExtractArchetypes(t *testing.T) {
	cards := []ygoprodeck.Card{
		{ID: 1, Archetype: "Blue-Eyes"},
		{ID: 2, Archetype: "Dark Magician"},
		{ID: 3, Archetype: "Blue-Eyes"}, // duplicate within the set
		{ID: 4, Archetype: "   "},
		{ID: 5},
		{ID: 6, Archetype: "Harpie"}, // already known on disk
	}
	existing := map[string]struct{}{"Harpie": {}}

	got := ExtractArchetypes(cards, existing, 7)
	require.Len(t, got, 2)
	assert.Equal(t, dataset.Archetype{ID: 8, Name: "Blue-Eyes", NameEn: "Blue-Eyes"}, got[0])
	assert.Equal(t, dataset.Archetype{ID: 9, Name: "Dark Magician", NameEn: "Dark Magician"}, got[1])
}

func TestExtractArchetypesTrimsBeforeComparing(t *testing.T) {
	cards := []ygoprodeck.Card{{ID: 1, Archetype: "  Harpie  "}}
	got := ExtractArchetypes(cards, map[string]struct{}{"Harpie": {}}, 3)
	assert.Empty(t, got)
}

func TestExtractArchetypesNoneNew(t *testing.T) {
	cards := []ygoprodeck.Card{{ID: 1}, {ID: 2, Archetype: ""}}
	got := ExtractArchetypes(cards, nil, 12)
	assert.Empty(t, got)
}
