package dataset

// Frame is the simplified card frame stored in the dataset. The values
// form a closed set; Magic is the dataset's historical name for spell
// cards.
type Frame string

const (
	FrameNormal  Frame = "Normal"
	FrameEffect  Frame = "Effect"
	FrameFusion  Frame = "Fusion"
	FrameSynchro Frame = "Synchro"
	FrameXyz     Frame = "Xyz"
	FrameLink    Frame = "Link"
	FrameRitual  Frame = "Ritual"
	FrameMagic   Frame = "Magic"
	FrameTrap    Frame = "Trap"
)

// Collection describes one printed product. Collection files hold exactly
// one of these, wrapped in a single-element list.
type Collection struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NameEn      string `json:"nameEn"`
	Type        string `json:"type"`
	CodePrefix  string `json:"codePrefix"`
	ReleaseDate string `json:"releaseDate"`
}

// CardBase carries the fields every card variant shares.
type CardBase struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameEn string `json:"nameEn"`
}

// Card is the dataset-side card shape. Exactly three variants exist:
// Monster, Spell and Trap. Spell and trap cards never carry combat stats,
// so they are separate types rather than a monster struct with holes.
type Card interface {
	CardID() string
}

func (b CardBase) CardID() string { return b.ID }

type Monster struct {
	CardBase
	Attribute   string `json:"attribute"`
	Atk         int    `json:"atk"`
	Def         int    `json:"def"`
	Level       int    `json:"level"`
	MonsterType string `json:"monsterType"`
	Frame       Frame  `json:"type"`
	IsEffect    bool   `json:"isEffect"`
	IsPendulum  bool   `json:"isPendulum"`
	IsLink      bool   `json:"isLink"`
	Description string `json:"description"`
	Archetype   string `json:"archetype,omitempty"`
}

type Spell struct {
	CardBase
	Attribute   string `json:"attribute"`
	Frame       Frame  `json:"type"`
	IsEffect    bool   `json:"isEffect"`
	IsPendulum  bool   `json:"isPendulum"`
	IsLink      bool   `json:"isLink"`
	Description string `json:"description"`
	Archetype   string `json:"archetype,omitempty"`
}

type Trap struct {
	CardBase
	Attribute   string `json:"attribute"`
	Frame       Frame  `json:"type"`
	IsEffect    bool   `json:"isEffect"`
	IsPendulum  bool   `json:"isPendulum"`
	IsLink      bool   `json:"isLink"`
	Description string `json:"description"`
	Archetype   string `json:"archetype,omitempty"`
}

// CollectionCard links a printed card number to a card and its collection.
type CollectionCard struct {
	ID           string `json:"id"`
	CardID       string `json:"cardId"`
	CollectionID string `json:"collectionId"`
}

// Archetype is a named card grouping referenced by card text. Ids are
// assigned monotonically across all archetype files; nameEn is the
// uniqueness key.
type Archetype struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	NameEn string `json:"nameEn"`
}
