package materialize

import (
	"strings"

	"github.com/ygofr/ygosync/internal/dataset"
)

// frameOrder lists the monster frame keywords in precedence order: the
// special summon frames first, Effect before Normal last, so a "Synchro
// Tuner Monster" classifies as Synchro and never as Effect.
var frameOrder = []struct {
	keyword string
	frame   dataset.Frame
}{
	{"Synchro", dataset.FrameSynchro},
	{"Fusion", dataset.FrameFusion},
	{"Xyz", dataset.FrameXyz},
	{"Link", dataset.FrameLink},
	{"Ritual", dataset.FrameRitual},
	{"Effect", dataset.FrameEffect},
	{"Normal", dataset.FrameNormal},
}

// ClassifyFrame reduces the API's verbose card type ("Synchro Tuner
// Monster", "Spell Card") to a dataset frame. Spell and trap cards
// short-circuit before any monster keyword is considered; the typeline is
// scanned too because the type field spells some frames differently
// ("XYZ Monster" vs the typeline's "Xyz"). Unrecognized input is Normal.
func ClassifyFrame(cardType string, typeline []string) dataset.Frame {
	if strings.Contains(cardType, "Spell") {
		return dataset.FrameMagic
	}
	if strings.Contains(cardType, "Trap") {
		return dataset.FrameTrap
	}

	haystack := cardType
	if len(typeline) > 0 {
		haystack += " " + strings.Join(typeline, " ")
	}
	for _, fo := range frameOrder {
		if strings.Contains(haystack, fo.keyword) {
			return fo.frame
		}
	}
	return dataset.FrameNormal
}
