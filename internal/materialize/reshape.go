package materialize

import (
	"strconv"
	"strings"

	"github.com/ygofr/ygosync/internal/dataset"
	"github.com/ygofr/ygosync/internal/ygoprodeck"
)

// ReshapeCard converts a raw API card into its dataset variant. Spells
// carry the fixed SPELL attribute and the Magic frame, traps TRAP/Trap;
// monsters keep their stats, with race stored as monsterType.
func ReshapeCard(c ygoprodeck.Card) dataset.Card {
	base := dataset.CardBase{
		ID:     strconv.Itoa(c.ID),
		Name:   c.Name,
		NameEn: c.NameEn,
	}
	if base.NameEn == "" {
		base.NameEn = c.Name
	}
	archetype := strings.TrimSpace(c.Archetype)

	switch frame := ClassifyFrame(c.Type, c.Typeline); frame {
	case dataset.FrameMagic:
		return dataset.Spell{
			CardBase:    base,
			Attribute:   "SPELL",
			Frame:       frame,
			Description: c.Desc,
			Archetype:   archetype,
		}
	case dataset.FrameTrap:
		return dataset.Trap{
			CardBase:    base,
			Attribute:   "TRAP",
			Frame:       frame,
			Description: c.Desc,
			Archetype:   archetype,
		}
	default:
		return dataset.Monster{
			CardBase:    base,
			Attribute:   c.Attribute,
			Atk:         c.Atk,
			Def:         c.Def,
			Level:       c.Level,
			MonsterType: c.Race,
			Frame:       frame,
			IsEffect:    strings.Contains(c.Type, "Effect"),
			IsPendulum:  strings.Contains(c.Type, "Pendulum"),
			IsLink:      strings.Contains(c.Type, "Link"),
			Description: c.Desc,
			Archetype:   archetype,
		}
	}
}

// ReshapeCards converts a fetched card list in order.
func ReshapeCards(cards []ygoprodeck.Card) []dataset.Card {
	out := make([]dataset.Card, 0, len(cards))
	for _, c := range cards {
		out = append(out, ReshapeCard(c))
	}
	return out
}
