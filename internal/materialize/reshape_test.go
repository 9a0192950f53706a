package materialize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ygofr/ygosync/internal/dataset"
	"github.com/ygofr/ygosync/internal/ygoprodeck"
)

func TestReshapeCardMonster(t *testing.T) {
	card := ReshapeCard(ygoprodeck.Card{
		ID:        46986414,
		Name:      "Magicien Sombre",
		NameEn:    "Dark Magician",
		Type:      "Normal Monster",
		Typeline:  []string{"Spellcaster", "Normal"},
		Desc:      "Le mage ultime en termes d'attaque et de défense.",
		Race:      "Spellcaster",
		Attribute: "DARK",
		Atk:       2500,
		Def:       2100,
		Level:     7,
	})

	m, ok := card.(dataset.Monster)
	require.True(t, ok, "expected a monster, got %T", card)
	assert.Equal(t, "46986414", m.ID)
	assert.Equal(t, "Magicien Sombre", m.Name)
	assert.Equal(t, "Dark Magician", m.NameEn)
	assert.Equal(t, "DARK", m.Attribute)
	assert.Equal(t, 2500, m.Atk)
	assert.Equal(t, 2100, m.Def)
	assert.Equal(t, 7, m.Level)
	assert.Equal(t, "Spellcaster", m.MonsterType)
	assert.Equal(t, dataset.FrameNormal, m.Frame)
	assert.False(t, m.IsEffect)
	assert.False(t, m.IsPendulum)
	assert.False(t, m.IsLink)
	assert.Empty(t, m.Archetype)
}

func TestReshapeCardSpell(t *testing.T) {
	card := ReshapeCard(ygoprodeck.Card{
		ID:   53129443,
		Name: "Trou Noir",
		Type: "Spell Card",
		Race: "Normal",
		Desc: "Détruisez tous les monstres sur le Terrain.",
	})

	s, ok := card.(dataset.Spell)
	require.True(t, ok, "expected a spell, got %T", card)
	assert.Equal(t, "53129443", s.ID)
	assert.Equal(t, "SPELL", s.Attribute)
	assert.Equal(t, dataset.FrameMagic, s.Frame)
	assert.False(t, s.IsEffect)
	assert.False(t, s.IsPendulum)
	assert.False(t, s.IsLink)
	// name_en missing in the localized payload falls back to the name.
	assert.Equal(t, "Trou Noir", s.NameEn)
}

func TestReshapeCardTrap(t *testing.T) {
	card := ReshapeCard(ygoprodeck.Card{
		ID:   4206964,
		Name: "Piège Sans Fond",
		Type: "Trap Card",
		Race: "Normal",
	})

	tr, ok := card.(dataset.Trap)
	require.True(t, ok, "expected a trap, got %T", card)
	assert.Equal(t, "TRAP", tr.Attribute)
	assert.Equal(t, dataset.FrameTrap, tr.Frame)
}

func TestReshapeCardFlags(t *testing.T) {
	card := ReshapeCard(ygoprodeck.Card{
		ID:        16178681,
		Name:      "Odd-Eyes Pendulum Dragon",
		Type:      "Pendulum Effect Monster",
		Race:      "Dragon",
		Attribute: "DARK",
	})

	m, ok := card.(dataset.Monster)
	require.True(t, ok)
	assert.Equal(t, dataset.FrameEffect, m.Frame)
	assert.True(t, m.IsEffect)
	assert.True(t, m.IsPendulum)
	assert.False(t, m.IsLink)

	card = ReshapeCard(ygoprodeck.Card{
		ID:   1861629,
		Name: "Decode Talker",
		Type: "Link Monster",
		Race: "Cyberse",
	})
	m, ok = card.(dataset.Monster)
	require.True(t, ok)
	assert.Equal(t, dataset.FrameLink, m.Frame)
	assert.True(t, m.IsLink)
}

func TestReshapeCardArchetypeTrimmed(t *testing.T) {
	card := ReshapeCard(ygoprodeck.Card{
		ID:        89631139,
		Name:      "Dragon Blanc aux Yeux Bleus",
		Type:      "Normal Monster",
		Archetype: "  Blue-Eyes  ",
	})
	m, ok := card.(dataset.Monster)
	require.True(t, ok)
	assert.Equal(t, "Blue-Eyes", m.Archetype)
}

func TestReshapeCardMissingStatsDefaultZero(t *testing.T) {
	card := ReshapeCard(ygoprodeck.Card{ID: 1, Name: "x", Type: "Effect Monster"})
	m, ok := card.(dataset.Monster)
	require.True(t, ok)
	assert.Zero(t, m.Atk)
	assert.Zero(t, m.Def)
	assert.Zero(t, m.Level)
}

func TestReshapeCardJSONShape(t *testing.T) {
	b, err := json.Marshal(ReshapeCard(ygoprodeck.Card{ID: 1, Name: "x", Type: "Spell Card"}))
	require.NoError(t, err)
	s := string(b)
	assert.NotContains(t, s, `"atk"`)
	assert.NotContains(t, s, `"monsterType"`)
	assert.NotContains(t, s, `"archetype"`)
	assert.Contains(t, s, `"attribute":"SPELL"`)
	assert.Contains(t, s, `"type":"Magic"`)

	b, err = json.Marshal(ReshapeCard(ygoprodeck.Card{ID: 2, Name: "y", Type: "Effect Monster", Atk: 100}))
	require.NoError(t, err)
	s = string(b)
	assert.Contains(t, s, `"atk":100`)
	assert.Contains(t, s, `"type":"Effect"`)
}

func TestReshapeCards(t *testing.T) {
	cards := ReshapeCards([]ygoprodeck.Card{
		{ID: 1, Name: "a", Type: "Normal Monster"},
		{ID: 2, Name: "b", Type: "Spell Card"},
		{ID: 3, Name: "c", Type: "Trap Card"},
	})
	require.Len(t, cards, 3)
	assert.Equal(t, "1", cards[0].CardID())
	assert.Equal(t, "2", cards[1].CardID())
	assert.Equal(t, "3", cards[2].CardID())
}
