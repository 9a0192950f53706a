package ygoprodeck

// CardSet is one printed product as listed by the cardsets.php endpoint.
type CardSet struct {
	SetName    string `json:"set_name"`
	SetCode    string `json:"set_code"`
	NumOfCards int    `json:"num_of_cards"`
	TCGDate    string `json:"tcg_date"`
	SetImage   string `json:"set_image"`
}

// Card is the raw card object returned by cardinfo.php. Spell and trap
// cards come without atk/def/level, which decode to zero.
type Card struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	NameEn     string         `json:"name_en"`
	Type       string         `json:"type"`
	Typeline   []string       `json:"typeline"`
	Desc       string         `json:"desc"`
	Race       string         `json:"race"`
	Attribute  string         `json:"attribute"`
	Atk        int            `json:"atk"`
	Def        int            `json:"def"`
	Level      int            `json:"level"`
	Archetype  string         `json:"archetype"`
	CardSets   []CardSetEntry `json:"card_sets"`
	CardImages []CardImage    `json:"card_images"`
}

// CardSetEntry is one printing of a card inside a set.
type CardSetEntry struct {
	SetName       string `json:"set_name"`
	SetCode       string `json:"set_code"`
	SetRarity     string `json:"set_rarity"`
	SetRarityCode string `json:"set_rarity_code"`
	SetPrice      string `json:"set_price"`
}

type CardImage struct {
	ID              int    `json:"id"`
	ImageURL        string `json:"image_url"`
	ImageURLSmall   string `json:"image_url_small"`
	ImageURLCropped string `json:"image_url_cropped"`
}

// cardsEnvelope wraps cardinfo.php responses; the card list sits under a
// data key. An absent key means no results for the query, not an error.
type cardsEnvelope struct {
	Data []Card `json:"data"`
}

// errorEnvelope is the API's error shape for non-2xx responses.
type errorEnvelope struct {
	Error string `json:"error"`
}
